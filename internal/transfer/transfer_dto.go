package transfer

type TransferResponse struct {
	ID                 string `json:"id"`
	EmployeeID         string `json:"employee_id"`
	FromLeaveGroupID   string `json:"from_leave_group_id"`
	ToLeaveGroupID     string `json:"to_leave_group_id"`
	LeaveType          string `json:"leave_type"`
	DaysTransferred    string `json:"days_transferred"`
	Year               string `json:"year"`
	TransferIdentifier string `json:"transfer_identifier"`
	IsReversed         bool   `json:"is_reversed"`
	ReversedByID       string `json:"reversed_by_id,omitempty"`
}

func mapTransferToResponse(t LeaveTransfer) TransferResponse {
	resp := TransferResponse{
		ID:                 t.ID.String(),
		EmployeeID:         t.EmployeeID.String(),
		FromLeaveGroupID:   t.FromLeaveGroupID,
		ToLeaveGroupID:     t.ToLeaveGroupID,
		LeaveType:          t.LeaveType,
		DaysTransferred:    t.DaysTransferred.StringFixed(2),
		Year:               t.Year.Format("2006-01-02"),
		TransferIdentifier: t.TransferIdentifier.String(),
		IsReversed:         t.IsReversed,
	}
	if t.ReversedByID != nil {
		resp.ReversedByID = t.ReversedByID.String()
	}
	return resp
}
