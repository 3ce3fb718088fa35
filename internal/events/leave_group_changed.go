package events

import "time"

const LeaveGroupChangedTopic = "hr.leave.group_change.v1"

type LeaveGroupChangedEvent struct {
	EventType       string    `json:"event_type"`
	RequestID       string    `json:"request_id"`
	EmployeeID      string    `json:"employee_id"`
	OldLeaveGroupID string    `json:"old_leave_group_id"`
	NewLeaveGroupID string    `json:"new_leave_group_id"`
	OccurredAt      time.Time `json:"occurred_at"`
}
