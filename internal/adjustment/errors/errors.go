package adjustmenterrors

import (
	"net/http"

	"go-leavehub/internal/shared/apperror"
)

var (
	ErrAdjustmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"attendance adjustment not found",
		http.StatusNotFound,
	)
	ErrApprovalNotFound = apperror.New(
		apperror.CodeNotFound,
		"adjustment approval not found",
		http.StatusNotFound,
	)
	ErrDuplicateAdjustment = apperror.New(
		apperror.CodeConflict,
		"an adjustment of this type already exists for this date",
		http.StatusConflict,
	)
	ErrUnknownAdjustmentType = apperror.New(
		apperror.CodeInvalidInput,
		"unknown adjustment type",
		http.StatusBadRequest,
	)
	ErrInvalidAttendanceDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid attendance_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidTimeFrame = apperror.New(
		apperror.CodeInvalidInput,
		"invalid time format, expected HH:MM",
		http.StatusBadRequest,
	)
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid id",
		http.StatusBadRequest,
	)
	ErrAlreadyDecided = apperror.New(
		apperror.CodeInvalidState,
		"attendance adjustment has already been decided",
		http.StatusBadRequest,
	)
)
