package transfer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeaveTransfer is one ledger row recording days carried when an employee
// moves between leave groups. Rows are append-only: a reversal is a mirror
// row with negated days, never a delete.
type LeaveTransfer struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID        uuid.UUID `gorm:"type:uuid;not null;index:idx_transfers_employee_year"`
	FromLeavePolicyID uuid.UUID `gorm:"type:uuid;not null"`
	ToLeavePolicyID   uuid.UUID `gorm:"type:uuid;not null"`
	FromLeaveGroupID  string    `gorm:"type:varchar(50);not null"`
	ToLeaveGroupID    string    `gorm:"type:varchar(50);not null"`
	LeaveType         string    `gorm:"type:varchar(50);not null"`

	DaysTransferred decimal.Decimal `gorm:"type:numeric(5,2);not null"`

	// Year anchors the row to a reset period; it holds the period start date.
	Year               time.Time `gorm:"type:date;not null;index:idx_transfers_employee_year"`
	TransferIdentifier uuid.UUID `gorm:"type:uuid;not null;index"`

	IsReversed   bool       `gorm:"not null;default:false"`
	ReversedByID *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveTransfer) TableName() string {
	return "leave_transfers"
}
