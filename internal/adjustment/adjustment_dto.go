package adjustment

type CreateAdjustmentRequest struct {
	EmployeeID       string `json:"employee_id" binding:"required,uuid"`
	AttendanceDate   string `json:"attendance_date" binding:"required"`
	AdjustmentType   string `json:"adjustment_type" binding:"required"`
	RequestedInTime  string `json:"requested_in_time"`
	RequestedOutTime string `json:"requested_out_time"`
	Reason           string `json:"reason"`
}

type SubmitApprovalRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approved rejected"`
	Comment  string `json:"comment"`
}

type AdjustmentResponse struct {
	ID               string `json:"id"`
	EmployeeID       string `json:"employee_id"`
	AttendanceDate   string `json:"attendance_date"`
	AdjustmentType   string `json:"adjustment_type"`
	RequestedInTime  string `json:"requested_in_time,omitempty"`
	RequestedOutTime string `json:"requested_out_time,omitempty"`
	Reason           string `json:"reason,omitempty"`
	Status           string `json:"status"`
	DecidedAt        string `json:"decided_at,omitempty"`
}

type ApprovalResponse struct {
	ID           string `json:"id"`
	AdjustmentID string `json:"adjustment_id"`
	SupervisorID string `json:"supervisor_id"`
	Level        int    `json:"level"`
	Status       string `json:"status"`
	Comment      string `json:"comment,omitempty"`
	DecidedAt    string `json:"decided_at,omitempty"`
}
