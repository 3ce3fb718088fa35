package calendarerrors

import (
	"net/http"

	"go-leavehub/internal/shared/apperror"
)

var (
	ErrHolidayDateOrder = apperror.New(
		apperror.CodeInvalidInput,
		"to_date cannot be before from_date",
		http.StatusBadRequest,
	)
	ErrHolidayNotFound = apperror.New(
		apperror.CodeNotFound,
		"holiday not found",
		http.StatusNotFound,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidResetWindow = apperror.New(
		apperror.CodeInvalidInput,
		"invalid reset period window",
		http.StatusBadRequest,
	)
	ErrInvalidCutOffDay = apperror.New(
		apperror.CodeInvalidInput,
		"cut_off_day must be between 1 and 28",
		http.StatusBadRequest,
	)
)
