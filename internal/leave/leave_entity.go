package leave

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LeaveRequest struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID    uuid.UUID `gorm:"type:uuid;not null;index"`
	LeavePolicyID uuid.UUID `gorm:"type:uuid;not null"`
	LeaveType     string    `gorm:"type:varchar(50);not null;index"`

	FromDate time.Time `gorm:"type:date;not null"`
	ToDate   time.Time `gorm:"type:date;not null"`

	DaysCount decimal.Decimal `gorm:"type:numeric(4,1);not null"`
	IsHalfDay bool            `gorm:"not null;default:false"`
	IsHoliday bool            `gorm:"not null;default:false"`
	Reason    string          `gorm:"type:text"`

	// Status is pending_L{n} while level n is deciding, then approved or
	// rejected.
	Status string `gorm:"type:varchar(20);not null;index"`

	DecidedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

type LeaveApproval struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	LeaveRequestID uuid.UUID `gorm:"type:uuid;not null;index"`
	SupervisorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Level          int       `gorm:"type:int;not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending'"`
	Comment        string    `gorm:"type:text"`
	DecidedAt      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveApproval) TableName() string {
	return "leave_approvals"
}
