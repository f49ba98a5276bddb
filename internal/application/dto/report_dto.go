package dto

// ProgressReportResponse is the payload of
// GET /api/projects/projects/{id}/progress_report/.
type ProgressReportResponse struct {
	ProjectID           string  `json:"project_id"`
	ProjectName         string  `json:"project_name"`
	EstimatedHours      float64 `json:"estimated_hours"`
	TotalTimeSpentHours float64 `json:"total_time_spent_hours"`
	ProgressPercentage  float64 `json:"progress_percentage"`
	Status              string  `json:"status"`
}

// DailySummaryRecord is one calendar day in the daily summary. Hours default
// to 0 for days without rows; the range always yields one record per day.
type DailySummaryRecord struct {
	Date              string  `json:"date"` // YYYY-MM-DD
	WorkingHours      float64 `json:"working_hours"`
	AppUsageHours     float64 `json:"app_usage_hours"`
	ProductivityScore float64 `json:"productivity_score"`
}

// AppUsageSummaryRecord is one application's total in the usage summary,
// sorted descending by hours.
type AppUsageSummaryRecord struct {
	AppName         string  `json:"app_name"`
	TotalUsageHours float64 `json:"total_usage_hours"`
}
