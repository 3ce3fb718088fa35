package calendar

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Holiday struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	FromDate    time.Time `gorm:"type:date;not null;index:idx_holidays_range"`
	ToDate      time.Time `gorm:"type:date;not null;index:idx_holidays_range"`
	DaysCount   int       `gorm:"type:int;not null;default:0"`
	Description *string   `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Holiday) TableName() string {
	return "holidays"
}

// LeaveReset is the configured annual accounting window. At most one row is
// active at a time; balances count "used so far" within this window.
type LeaveReset struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StartMonth int       `gorm:"type:smallint;not null;default:1"`
	StartDay   int       `gorm:"type:smallint;not null;default:1"`
	EndMonth   int       `gorm:"type:smallint;not null;default:12"`
	EndDay     int       `gorm:"type:smallint;not null;default:31"`
	IsActive   bool      `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveReset) TableName() string {
	return "leave_resets"
}

type CutOffDate struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CutOffDay int       `gorm:"type:smallint;not null;default:25"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CutOffDate) TableName() string {
	return "cut_off_dates"
}
