package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EmploymentTypeGeneral = "general"
	EmploymentTypeTeacher = "teacher"
)

const (
	EmploymentStatusProbation = "probation"
	EmploymentStatusRegular   = "regular"
)

const (
	StatusActive     = "active"
	StatusResigned   = "resigned"
	StatusTerminated = "terminated"
)

const (
	DefaultOfficeDays = "Monday-Friday"
	DefaultOfficeTime = "09:00-18:00"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_employee_number"`
	FullName       string    `gorm:"type:varchar(150);not null"`
	Email          string    `gorm:"type:varchar(150);not null;uniqueIndex:uq_employee_email"`
	Gender         string    `gorm:"type:varchar(10);not null"`

	LeaveGroupID     *string `gorm:"type:varchar(50);index"`
	EmploymentType   string  `gorm:"type:varchar(20);not null;default:'general'"`
	EmploymentStatus string  `gorm:"type:varchar(20);not null;default:'probation'"`

	JoiningDate      time.Time  `gorm:"type:date;not null"`
	ConfirmationDate *time.Time `gorm:"type:date"`
	ProbationMonths  int        `gorm:"type:int;not null;default:0"`

	OfficeDays string `gorm:"type:varchar(50);not null;default:'Monday-Friday'"`
	OfficeTime string `gorm:"type:varchar(20);not null;default:'09:00-18:00'"`

	Status string `gorm:"type:varchar(20);not null;default:'active'"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) OnProbation() bool {
	return e.EmploymentStatus == EmploymentStatusProbation
}
