package entity

import "time"

// TimeLog is a work interval owned by exactly one user. A nil EndTime means
// the log is still open; open logs contribute nothing to duration sums.
type TimeLog struct {
	ID          string
	UserID      string
	StartTime   time.Time
	EndTime     *time.Time
	Description string
	ProjectID   *string // nulled when the project is deleted
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Read-only display fields, joined from users/projects on load.
	UserUsername string
	ProjectName  *string
}

// Closed reports whether the log has an end time.
func (t *TimeLog) Closed() bool {
	return t.EndTime != nil
}

// DurationSeconds returns the elapsed seconds of a closed log, 0 for an open one.
func (t *TimeLog) DurationSeconds() float64 {
	if t.EndTime == nil {
		return 0
	}
	return t.EndTime.Sub(t.StartTime).Seconds()
}
