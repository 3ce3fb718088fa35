package balance

import (
	"net/http"
	"strconv"

	balanceerrors "go-leavehub/internal/balance/errors"
	"go-leavehub/internal/shared/apperror"
	"go-leavehub/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("balance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetEmployeeBalance(c *gin.Context) {
	year, err := parseYear(c.Query("year"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.QueryBalance(c.Request.Context(), c.Param("id"), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetTeamBalance(c *gin.Context) {
	year, err := parseYear(c.Query("year"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.QueryBalanceBySupervisor(c.Request.Context(), c.Param("id"), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAllBalances(c *gin.Context) {
	year, err := parseYear(c.Query("year"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.QueryAllActive(c.Request.Context(), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func parseYear(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1000 || year > 9999 {
		return 0, balanceerrors.ErrInvalidYear
	}
	return year, nil
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("balance query failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
