package entity

import "time"

// ActivityMetric is a free-form numeric sample, e.g. keyboard_strokes or
// mouse_clicks, owned by one user.
type ActivityMetric struct {
	ID         string
	UserID     string
	MetricType string
	Value      float64
	RecordedAt time.Time

	// Read-only display field, joined from users on load.
	UserUsername string
}
