package supervisor

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//go:generate mockgen -source=supervisor_repo.go -destination=mock/supervisor_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, link *Link) error
	Delete(ctx context.Context, id string) error
	ChainForEmployee(ctx context.Context, employeeID string) ([]Link, error)
	EmployeeIDsUnder(ctx context.Context, supervisorID string) ([]uuid.UUID, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: tx}), &gorm.Config{})
	if err != nil {
		return r
	}
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, link *Link) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Link{}, "id = ?", id).Error
}

// ChainForEmployee returns the employee's approval chain ordered by level.
func (r *repository) ChainForEmployee(ctx context.Context, employeeID string) ([]Link, error) {
	var links []Link
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("level ASC").
		Find(&links).Error
	return links, err
}

func (r *repository) EmployeeIDsUnder(ctx context.Context, supervisorID string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&Link{}).
		Where("supervisor_id = ?", supervisorID).
		Distinct().
		Pluck("employee_id", &ids).Error
	return ids, err
}
