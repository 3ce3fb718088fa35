package leave

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	LeaveType  string `json:"leave_type" binding:"required"`
	FromDate   string `json:"from_date" binding:"required"`
	ToDate     string `json:"to_date" binding:"required"`
	IsHalfDay  bool   `json:"is_half_day"`
	// IsHoliday marks the request as spanning holidays; unset, it defaults
	// to the policy's count_holidays.
	IsHoliday *bool  `json:"is_holiday"`
	Reason    string `json:"reason"`
}

type SubmitApprovalRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approved rejected"`
	Comment  string `json:"comment"`
}

type LeaveResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	LeavePolicyID string `json:"leave_policy_id"`
	LeaveType     string `json:"leave_type"`
	FromDate      string `json:"from_date"`
	ToDate        string `json:"to_date"`
	DaysCount     string `json:"days_count"`
	IsHalfDay     bool   `json:"is_half_day"`
	IsHoliday     bool   `json:"is_holiday"`
	Reason        string `json:"reason,omitempty"`
	Status        string `json:"status"`
	DecidedAt     string `json:"decided_at,omitempty"`
}

type ApprovalResponse struct {
	ID             string `json:"id"`
	LeaveRequestID string `json:"leave_request_id"`
	SupervisorID   string `json:"supervisor_id"`
	Level          int    `json:"level"`
	Status         string `json:"status"`
	Comment        string `json:"comment,omitempty"`
	DecidedAt      string `json:"decided_at,omitempty"`
}
