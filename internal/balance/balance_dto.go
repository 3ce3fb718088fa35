package balance

import "github.com/shopspring/decimal"

// PolicyBalance is one per-policy line of an employee's balance sheet.
// Transferred-in days are already consumed under the previous group, so they
// reduce the new group's allotment; transferred-out days leave with the
// employee and are added back.
type PolicyBalance struct {
	PolicyID            string          `json:"policy_id"`
	LeaveType           string          `json:"leave_type"`
	TotalLeaveDays      int             `json:"total_leave_days"`
	Used                decimal.Decimal `json:"used"`
	Pending             decimal.Decimal `json:"pending"`
	TransferredIn       decimal.Decimal `json:"transferred_in"`
	TransferredOut      decimal.Decimal `json:"transferred_out"`
	ProbationAdjustment decimal.Decimal `json:"probation_adjustment"`
	Remaining           decimal.Decimal `json:"remaining"`
}

type EmployeeBalanceResponse struct {
	EmployeeID     string          `json:"employee_id"`
	EmployeeNumber string          `json:"employee_number"`
	FullName       string          `json:"full_name"`
	LeaveGroupID   string          `json:"leave_group_id"`
	PeriodStart    string          `json:"period_start"`
	PeriodEnd      string          `json:"period_end"`
	Balances       []PolicyBalance `json:"balances"`
}
