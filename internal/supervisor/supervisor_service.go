package supervisor

import (
	"context"
	"database/sql"

	supervisorerrors "go-leavehub/internal/supervisor/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=supervisor_service.go -destination=mock/supervisor_service_mock.go -package=mock
type Service interface {
	CreateLink(ctx context.Context, req CreateLinkRequest) (LinkResponse, error)
	DeleteLink(ctx context.Context, id string) error
	ChainForEmployee(ctx context.Context, employeeID string) ([]LinkResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("supervisor.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("supervisor.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) CreateLink(ctx context.Context, req CreateLinkRequest) (LinkResponse, error) {
	s.logger.Debug("create supervisor link requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("supervisor_id", req.SupervisorID),
		zap.Int("level", req.Level),
	)

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return LinkResponse{}, supervisorerrors.ErrInvalidEmployeeID
	}
	supervisorID, err := uuid.Parse(req.SupervisorID)
	if err != nil {
		return LinkResponse{}, supervisorerrors.ErrInvalidEmployeeID
	}
	if employeeID == supervisorID {
		s.logger.Warn("create supervisor link rejected: self supervision",
			zap.String("employee_id", req.EmployeeID),
		)
		return LinkResponse{}, supervisorerrors.ErrSelfSupervision
	}
	if req.Level < 1 {
		return LinkResponse{}, supervisorerrors.ErrInvalidLevel
	}

	link := &Link{
		ID:           uuid.New(),
		EmployeeID:   employeeID,
		SupervisorID: supervisorID,
		Level:        req.Level,
	}

	if err := s.repo.Create(ctx, link); err != nil {
		s.logger.Error("create supervisor link persist failed", zap.Error(err))
		return LinkResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create supervisor link success",
		zap.String("link_id", link.ID.String()),
		zap.Int("level", link.Level),
	)
	return mapLinkToResponse(*link), nil
}

func (s *service) DeleteLink(ctx context.Context, id string) error {
	return mapRepositoryError(s.repo.Delete(ctx, id))
}

func (s *service) ChainForEmployee(ctx context.Context, employeeID string) ([]LinkResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, supervisorerrors.ErrInvalidEmployeeID
	}

	links, err := s.repo.ChainForEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]LinkResponse, len(links))
	for i, link := range links {
		resp[i] = mapLinkToResponse(link)
	}
	return resp, nil
}

func mapLinkToResponse(link Link) LinkResponse {
	return LinkResponse{
		ID:           link.ID.String(),
		EmployeeID:   link.EmployeeID.String(),
		SupervisorID: link.SupervisorID.String(),
		Level:        link.Level,
	}
}
