package dto

import "time"

// CreateTimeLogRequest input for a new time log. The owner always comes from
// the token; any user field in the body is ignored.
type CreateTimeLogRequest struct {
	StartTime           time.Time  `json:"start_time"`
	EndTime             *time.Time `json:"end_time"`
	ActivityDescription string     `json:"activity_description"`
	Project             *string    `json:"project"`
}

// UpdateTimeLogRequest partial update; nil fields are left untouched. Setting
// EndTime closes an open log.
type UpdateTimeLogRequest struct {
	StartTime           *time.Time `json:"start_time"`
	EndTime             *time.Time `json:"end_time"`
	ActivityDescription *string    `json:"activity_description"`
	Project             *string    `json:"project"`
}

// TimeLogResponse output for a time log.
type TimeLogResponse struct {
	ID                  string     `json:"id"`
	User                string     `json:"user"`
	UserUsername        string     `json:"user_username"`
	StartTime           time.Time  `json:"start_time"`
	EndTime             *time.Time `json:"end_time"`
	DurationSeconds     float64    `json:"duration_seconds"` // 0 while the log is open
	ActivityDescription string     `json:"activity_description"`
	Project             *string    `json:"project"`
	ProjectName         *string    `json:"project_name"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// CreateAppUsageRequest input for a new app-usage sample.
type CreateAppUsageRequest struct {
	AppName         string    `json:"app_name"`
	DurationSeconds int       `json:"duration_seconds"`
	Timestamp       time.Time `json:"timestamp"`
}

// UpdateAppUsageRequest partial update; nil fields are left untouched.
type UpdateAppUsageRequest struct {
	AppName         *string    `json:"app_name"`
	DurationSeconds *int       `json:"duration_seconds"`
	Timestamp       *time.Time `json:"timestamp"`
}

// AppUsageResponse output for an app-usage sample.
type AppUsageResponse struct {
	ID              string    `json:"id"`
	User            string    `json:"user"`
	UserUsername    string    `json:"user_username"`
	AppName         string    `json:"app_name"`
	DurationSeconds int       `json:"duration_seconds"`
	Timestamp       time.Time `json:"timestamp"`
}

// CreateActivityMetricRequest input for a new activity metric sample.
type CreateActivityMetricRequest struct {
	MetricType string    `json:"metric_type"`
	Value      float64   `json:"value"`
	Timestamp  time.Time `json:"timestamp"`
}

// UpdateActivityMetricRequest partial update; nil fields are left untouched.
type UpdateActivityMetricRequest struct {
	MetricType *string    `json:"metric_type"`
	Value      *float64   `json:"value"`
	Timestamp  *time.Time `json:"timestamp"`
}

// ActivityMetricResponse output for an activity metric sample.
type ActivityMetricResponse struct {
	ID           string    `json:"id"`
	User         string    `json:"user"`
	UserUsername string    `json:"user_username"`
	MetricType   string    `json:"metric_type"`
	Value        float64   `json:"value"`
	Timestamp    time.Time `json:"timestamp"`
}
