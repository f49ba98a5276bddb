package entity

// TeamMember is a membership row joined with the member's username for display.
type TeamMember struct {
	UserID   string
	Username string
}

// Team groups users under an optional head. Membership lives in the
// team_members join table and is loaded alongside the row.
type Team struct {
	ID           string
	Name         string  // unique
	HeadID       *string // nulled when the head user is deleted
	HeadUsername *string // read-only, joined from users
	Members      []TeamMember
}

// MemberIDs returns the member user ids.
func (t *Team) MemberIDs() []string {
	ids := make([]string, 0, len(t.Members))
	for _, m := range t.Members {
		ids = append(ids, m.UserID)
	}
	return ids
}
