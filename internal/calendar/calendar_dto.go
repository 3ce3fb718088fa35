package calendar

type CreateHolidayRequest struct {
	Name        string  `json:"name" binding:"required"`
	FromDate    string  `json:"from_date" binding:"required"`
	ToDate      string  `json:"to_date" binding:"required"`
	Description *string `json:"description"`
}

type HolidayResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	FromDate    string  `json:"from_date"`
	ToDate      string  `json:"to_date"`
	DaysCount   int     `json:"days_count"`
	Description *string `json:"description,omitempty"`
}

type SetLeaveResetRequest struct {
	StartMonth int `json:"start_month" binding:"required,min=1,max=12"`
	StartDay   int `json:"start_day" binding:"required,min=1,max=31"`
	EndMonth   int `json:"end_month" binding:"required,min=1,max=12"`
	EndDay     int `json:"end_day" binding:"required,min=1,max=31"`
}

type LeaveResetResponse struct {
	ID         string `json:"id"`
	StartMonth int    `json:"start_month"`
	StartDay   int    `json:"start_day"`
	EndMonth   int    `json:"end_month"`
	EndDay     int    `json:"end_day"`
	IsActive   bool   `json:"is_active"`
}

type SetCutOffRequest struct {
	CutOffDay int `json:"cut_off_day" binding:"required,min=1,max=28"`
}

type CutOffResponse struct {
	CutOffDay int `json:"cut_off_day"`
}
