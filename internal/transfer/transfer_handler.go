package transfer

import (
	"net/http"
	"time"

	"go-leavehub/internal/shared/apperror"
	"go-leavehub/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	ledger Ledger
	logger *zap.Logger
}

func NewHandler(ledger Ledger, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("transfer.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("transfer.handler")
	}
	return &Handler{ledger: ledger, logger: l}
}

func (h *Handler) ListForEmployee(c *gin.Context) {
	rows, err := h.ledger.ListForEmployee(c.Request.Context(), c.Param("id"), time.Now())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("list transfers failed",
			zap.String("employee_id", c.Param("id")),
			zap.Int("status", httpErr.Status),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	resp := make([]TransferResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapTransferToResponse(row)
	}
	response.Success(c, http.StatusOK, resp, nil)
}
