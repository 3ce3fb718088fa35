package events

import "time"

const LeaveRequestDecidedTopic = "hr.leave.decision.v1"

type LeaveRequestDecidedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id"`
	LeaveRequestID string    `json:"leave_request_id"`
	EmployeeID     string    `json:"employee_id"`
	LeaveType      string    `json:"leave_type"`
	Status         string    `json:"status"`
	DaysCount      string    `json:"days_count"`
	OccurredAt     time.Time `json:"occurred_at"`
}
