package dto

// CreateProjectRequest input for creating a project. Dates are YYYY-MM-DD.
type CreateProjectRequest struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Manager        *string `json:"manager"` // user id
	Team           *string `json:"team"`    // team id
	EstimatedHours float64 `json:"estimated_hours"`
	StartDate      *string `json:"start_date"`
	EndDate        *string `json:"end_date"`
	Status         string  `json:"status"`
}

// UpdateProjectRequest partial update; nil fields are left untouched.
type UpdateProjectRequest struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	Manager        *string  `json:"manager"`
	Team           *string  `json:"team"`
	EstimatedHours *float64 `json:"estimated_hours"`
	StartDate      *string  `json:"start_date"`
	EndDate        *string  `json:"end_date"`
	Status         *string  `json:"status"`
}

// ProjectResponse output for a project.
type ProjectResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Manager         *string `json:"manager"`
	ManagerUsername *string `json:"manager_username"`
	Team            *string `json:"team"`
	TeamName        *string `json:"team_name"`
	EstimatedHours  float64 `json:"estimated_hours"`
	StartDate       *string `json:"start_date"`
	EndDate         *string `json:"end_date"`
	Status          string  `json:"status"`
}
