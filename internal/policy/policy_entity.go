package policy

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Leave type catalog. Mirrors the policy reference data this system is
// seeded with.
const (
	TypeMedical      = "medical"
	TypeCasual       = "casual"
	TypeMaternity    = "maternity"
	TypePaternity    = "paternity"
	TypeAnnual       = "annual"
	TypeCompensatory = "compensatory"
	TypeDuty         = "duty"
	TypeBereavement  = "bereavement"
	TypeEmergency    = "emergency"
	TypeStudy        = "study"
)

const (
	GenderAny    = "any"
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	EffectiveFromJoining      = "joining"
	EffectiveFromConfirmation = "confirmation"
	EffectiveFromOneYear      = "one_year"
)

func KnownLeaveType(t string) bool {
	switch t {
	case TypeMedical, TypeCasual, TypeMaternity, TypePaternity, TypeAnnual,
		TypeCompensatory, TypeDuty, TypeBereavement, TypeEmergency, TypeStudy:
		return true
	}
	return false
}

type LeaveGroup struct {
	ID   string `gorm:"type:varchar(50);primaryKey"`
	Name string `gorm:"type:varchar(100);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveGroup) TableName() string {
	return "leave_groups"
}

// LeavePolicy is immutable reference data per leave group; lookups go by
// (leave_group, leave_type, is_active).
type LeavePolicy struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LeaveType    string    `gorm:"type:varchar(50);not null;index:idx_policies_group_type"`
	LeaveGroupID string    `gorm:"type:varchar(50);not null;index:idx_policies_group_type"`
	Gender       string    `gorm:"type:varchar(10);not null;default:'any'"`

	ApplyBeforeDays   int    `gorm:"type:int;not null;default:0"`
	EffectiveFrom     string `gorm:"type:varchar(20)"`
	TotalLeaveDays    int    `gorm:"type:int;not null;default:0"`
	MaxDaysPerRequest int    `gorm:"type:int;not null;default:0"`
	MinDaysPerRequest int    `gorm:"type:int;not null;default:0"`
	AllowHalfDay      bool   `gorm:"not null;default:false"`
	CountHolidays     bool   `gorm:"not null;default:false"`
	CountWeekends     bool   `gorm:"not null;default:false"`
	IsActive          bool   `gorm:"not null;default:true"`
	ValidityDays      int    `gorm:"type:int;not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (LeavePolicy) TableName() string {
	return "leave_policies"
}

// AllowedLeaveType restricts request sequencing: after an approved request
// of LeavePolicyID, only policies listed as AllowedPolicyID may come next.
// A policy with no rows carries no restriction.
type AllowedLeaveType struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LeavePolicyID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_allowed_pair"`
	AllowedPolicyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_allowed_pair"`

	CreatedAt time.Time
}

func (AllowedLeaveType) TableName() string {
	return "allowed_leave_types"
}
