package supervisor

type CreateLinkRequest struct {
	EmployeeID   string `json:"employee_id" binding:"required,uuid"`
	SupervisorID string `json:"supervisor_id" binding:"required,uuid"`
	Level        int    `json:"level" binding:"required,min=1"`
}

type LinkResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	SupervisorID string `json:"supervisor_id"`
	Level        int    `json:"level"`
}
