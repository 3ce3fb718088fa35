package policy

type CreateLeaveGroupRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type CreatePolicyRequest struct {
	LeaveType         string `json:"leave_type" binding:"required"`
	LeaveGroupID      string `json:"leave_group_id" binding:"required"`
	Gender            string `json:"gender" binding:"omitempty,oneof=any male female"`
	ApplyBeforeDays   int    `json:"apply_before_days" binding:"min=0"`
	EffectiveFrom     string `json:"effective_from" binding:"omitempty,oneof=joining confirmation one_year"`
	TotalLeaveDays    int    `json:"total_leave_days" binding:"min=0"`
	MaxDaysPerRequest int    `json:"max_days_per_request" binding:"min=0"`
	MinDaysPerRequest int    `json:"min_days_per_request" binding:"min=0"`
	AllowHalfDay      bool   `json:"allow_half_day"`
	CountHolidays     bool   `json:"count_holidays"`
	CountWeekends     bool   `json:"count_weekends"`
	ValidityDays      int    `json:"validity_days" binding:"min=0"`
}

type AllowNextTypeRequest struct {
	LeavePolicyID   string `json:"leave_policy_id" binding:"required,uuid"`
	AllowedPolicyID string `json:"allowed_policy_id" binding:"required,uuid"`
}

type PolicyResponse struct {
	ID                string `json:"id"`
	LeaveType         string `json:"leave_type"`
	LeaveGroupID      string `json:"leave_group_id"`
	Gender            string `json:"gender"`
	ApplyBeforeDays   int    `json:"apply_before_days"`
	EffectiveFrom     string `json:"effective_from,omitempty"`
	TotalLeaveDays    int    `json:"total_leave_days"`
	MaxDaysPerRequest int    `json:"max_days_per_request"`
	MinDaysPerRequest int    `json:"min_days_per_request"`
	AllowHalfDay      bool   `json:"allow_half_day"`
	CountHolidays     bool   `json:"count_holidays"`
	CountWeekends     bool   `json:"count_weekends"`
	IsActive          bool   `json:"is_active"`
	ValidityDays      int    `json:"validity_days"`
}
