package supervisor

import (
	"errors"
	"strings"

	supervisorerrors "go-leavehub/internal/supervisor/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return supervisorerrors.ErrLinkNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_supervisor_links" {
			return supervisorerrors.ErrDuplicateLink
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_supervisor_links") {
		return supervisorerrors.ErrDuplicateLink
	}

	return err
}
