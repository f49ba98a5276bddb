package entity

import "time"

// AppUsage is a sampled measure of time spent in an application.
type AppUsage struct {
	ID              string
	UserID          string
	AppName         string
	DurationSeconds int // >= 0
	RecordedAt      time.Time

	// Read-only display field, joined from users on load.
	UserUsername string
}
