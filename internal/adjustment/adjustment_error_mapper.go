package adjustment

import (
	"errors"
	"strings"

	adjustmenterrors "go-leavehub/internal/adjustment/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return adjustmenterrors.ErrAdjustmentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_adjustment_per_day" {
			return adjustmenterrors.ErrDuplicateAdjustment
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_adjustment_per_day") {
		return adjustmenterrors.ErrDuplicateAdjustment
	}

	return err
}
