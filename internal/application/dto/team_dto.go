package dto

// CreateTeamRequest input for creating a team. Members are usernames, matching
// the serialized form.
type CreateTeamRequest struct {
	Name    string   `json:"name"`
	Head    *string  `json:"head"` // user id
	Members []string `json:"members"`
}

// UpdateTeamRequest partial update; nil fields are left untouched. A non-nil
// Members replaces the whole membership set.
type UpdateTeamRequest struct {
	Name    *string   `json:"name"`
	Head    *string   `json:"head"`
	Members *[]string `json:"members"`
}

// TeamResponse output for a team. Members are usernames.
type TeamResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Head         *string  `json:"head"`
	HeadUsername *string  `json:"head_username"`
	Members      []string `json:"members"`
}
