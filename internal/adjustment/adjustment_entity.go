package adjustment

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeForgotSignIn      = "forgot_sign_in"
	TypeForgotSignOut     = "forgot_sign_out"
	TypeTrafficDelay      = "traffic_delay"
	TypePersonalEmergency = "personal_emergency"
)

func KnownAdjustmentType(t string) bool {
	switch t {
	case TypeForgotSignIn, TypeForgotSignOut, TypeTrafficDelay, TypePersonalEmergency:
		return true
	}
	return false
}

// AttendanceAdjustment asks to correct one day's attendance record. At most
// one request per (employee, date, type).
type AttendanceAdjustment struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_adjustment_per_day;index"`
	AttendanceDate time.Time `gorm:"type:date;not null;uniqueIndex:uq_adjustment_per_day"`
	AdjustmentType string    `gorm:"type:varchar(30);not null;uniqueIndex:uq_adjustment_per_day"`

	RequestedInTime  string `gorm:"type:varchar(5)"`
	RequestedOutTime string `gorm:"type:varchar(5)"`
	Reason           string `gorm:"type:text"`

	Status    string `gorm:"type:varchar(20);not null;index"`
	DecidedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AttendanceAdjustment) TableName() string {
	return "attendance_adjustments"
}

type AdjustmentApproval struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	AdjustmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	SupervisorID uuid.UUID `gorm:"type:uuid;not null;index"`
	Level        int       `gorm:"type:int;not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending'"`
	Comment      string    `gorm:"type:text"`
	DecidedAt    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AdjustmentApproval) TableName() string {
	return "adjustment_approvals"
}
