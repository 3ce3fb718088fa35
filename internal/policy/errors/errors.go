package policyerrors

import (
	"net/http"

	"go-leavehub/internal/shared/apperror"
)

var (
	ErrPolicyNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave policy not found",
		http.StatusNotFound,
	)
	ErrGroupNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave group not found",
		http.StatusNotFound,
	)
	ErrUnknownLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"unknown leave type",
		http.StatusBadRequest,
	)
	ErrDuplicatePolicy = apperror.New(
		apperror.CodeConflict,
		"an active policy for this leave type already exists in the group",
		http.StatusConflict,
	)
	ErrInvalidPolicyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave policy id",
		http.StatusBadRequest,
	)
)
