package balanceerrors

import (
	"net/http"

	"go-leavehub/internal/shared/apperror"
)

var (
	ErrNoLeaveGroup = apperror.New(
		apperror.CodeInvalidState,
		"employee has no leave group assigned, balance is undefined",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)

	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year must be a four digit number",
		http.StatusBadRequest,
	)
)
