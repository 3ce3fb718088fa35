package supervisor

import (
	"time"

	"github.com/google/uuid"
)

// Link is one level of an employee's approval chain. Levels are compared
// numerically for ordering and need not be contiguous.
type Link struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_supervisor_links;index"`
	SupervisorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_supervisor_links;index"`
	Level        int       `gorm:"type:int;not null;default:1;uniqueIndex:uq_supervisor_links"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Link) TableName() string {
	return "supervisor_links"
}
