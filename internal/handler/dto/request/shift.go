package request

type CreateShiftRequest struct {
	EventID        string `json:"event_id" binding:"required,uuid"`
	RoleID         string `json:"role_id" binding:"required,uuid"`
	Date           string `json:"date" binding:"required,datetime=2006-01-02"`
	TimeWindow     string `json:"time_window" binding:"required"`
	TotalVacancies int    `json:"total_vacancies" binding:"required,min=1"`
}

type ResizeShiftRequest struct {
	TotalVacancies int `json:"total_vacancies" binding:"required,min=1"`
}

type RescheduleShiftRequest struct {
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	TimeWindow string `json:"time_window" binding:"required"`
}

type AssignCoordinatorRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}
