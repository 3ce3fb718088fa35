package transfererrors

import (
	"net/http"

	"go-leavehub/internal/shared/apperror"
)

var ErrInvalidEmployeeID = apperror.New(
	apperror.CodeInvalidInput,
	"invalid employee id",
	http.StatusBadRequest,
)
