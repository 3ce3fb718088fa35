package supervisorerrors

import (
	"net/http"

	"go-leavehub/internal/shared/apperror"
)

var (
	ErrSelfSupervision = apperror.New(
		apperror.CodeInvalidInput,
		"an employee cannot be their own supervisor",
		http.StatusBadRequest,
	)
	ErrInvalidLevel = apperror.New(
		apperror.CodeInvalidInput,
		"level must be at least 1",
		http.StatusBadRequest,
	)
	ErrDuplicateLink = apperror.New(
		apperror.CodeConflict,
		"this supervisor link already exists",
		http.StatusConflict,
	)
	ErrLinkNotFound = apperror.New(
		apperror.CodeNotFound,
		"supervisor link not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
)
