package leaveerrors

import (
	"net/http"

	"go-leavehub/internal/shared/apperror"
)

var (
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrApprovalNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave approval not found",
		http.StatusNotFound,
	)
	ErrInvalidRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave request id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"from_date must not be after to_date",
		http.StatusBadRequest,
	)
	ErrNoLeaveGroup = apperror.New(
		apperror.CodeInvalidState,
		"employee has no leave group assigned",
		http.StatusBadRequest,
	)
	ErrEmployeeInactive = apperror.New(
		apperror.CodeInvalidState,
		"employee is not active",
		http.StatusBadRequest,
	)
	ErrNoPolicyForType = apperror.New(
		apperror.CodeInvalidInput,
		"no active leave policy for this leave type in the employee's group",
		http.StatusBadRequest,
	)
	ErrGenderNotEligible = apperror.New(
		apperror.CodeInvalidInput,
		"leave type is not available for this employee's gender",
		http.StatusBadRequest,
	)
	ErrBeforeJoining = apperror.New(
		apperror.CodeInvalidInput,
		"leave cannot start before the joining date",
		http.StatusBadRequest,
	)
	ErrBeforeConfirmation = apperror.New(
		apperror.CodeInvalidInput,
		"leave type is available only after confirmation",
		http.StatusBadRequest,
	)
	ErrBeforeOneYear = apperror.New(
		apperror.CodeInvalidInput,
		"leave type is available only after one year of service",
		http.StatusBadRequest,
	)
	ErrLeaveTypeNotAllowedNext = apperror.New(
		apperror.CodeInvalidInput,
		"this leave type cannot follow the previous leave request",
		http.StatusBadRequest,
	)
	ErrApplyBeforeDays = apperror.New(
		apperror.CodeInvalidInput,
		"leave must be applied further in advance for this leave type",
		http.StatusBadRequest,
	)
	ErrZeroDays = apperror.New(
		apperror.CodeInvalidInput,
		"requested period contains no countable leave days",
		http.StatusBadRequest,
	)
	ErrBelowMinDays = apperror.New(
		apperror.CodeInvalidInput,
		"requested days are below the minimum for this leave type",
		http.StatusBadRequest,
	)
	ErrAboveMaxDays = apperror.New(
		apperror.CodeInvalidInput,
		"requested days exceed the maximum for this leave type",
		http.StatusBadRequest,
	)
	ErrRequestAlreadyDecided = apperror.New(
		apperror.CodeInvalidState,
		"leave request has already been decided",
		http.StatusBadRequest,
	)
)
