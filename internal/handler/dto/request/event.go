package request

type CreateEventRequest struct {
	Name        string `json:"name" binding:"required,min=3"`
	Location    string `json:"location" binding:"required"`
	Country     string `json:"country"`
	StartDate   string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Description string `json:"description"`
}

type UpdateEventRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=3"`
	Location    *string `json:"location,omitempty"`
	Country     *string `json:"country,omitempty"`
	StartDate   *string `json:"start_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Description *string `json:"description,omitempty"`
	State       *string `json:"state,omitempty" binding:"omitempty,oneof=active inactive archived"`
}

type CreateRoleRequest struct {
	Name             string `json:"name" binding:"required"`
	Description      string `json:"description"`
	DetailedTasks    string `json:"detailed_tasks"`
	YoutubeURL       string `json:"youtube_url" binding:"omitempty,url"`
	ExperienceLevel  string `json:"experience_level" binding:"required,oneof=new intermediate advanced"`
	RequiresApproval bool   `json:"requires_approval"`
}

type UpdateRoleRequest struct {
	Name             *string `json:"name,omitempty"`
	Description      *string `json:"description,omitempty"`
	DetailedTasks    *string `json:"detailed_tasks,omitempty"`
	YoutubeURL       *string `json:"youtube_url,omitempty" binding:"omitempty,url"`
	ExperienceLevel  *string `json:"experience_level,omitempty" binding:"omitempty,oneof=new intermediate advanced"`
	RequiresApproval *bool   `json:"requires_approval,omitempty"`
	IsVisible        *bool   `json:"is_visible,omitempty"`
}
