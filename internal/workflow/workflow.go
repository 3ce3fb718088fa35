// Package workflow drives the multi-level sequential approval chain shared
// by leave requests and attendance adjustments. One approval row exists per
// supervisor level; a request advances through pending_L1, pending_L2, ...
// until the highest level approves it, and any single rejection kills the
// whole chain.
package workflow

import (
	"fmt"
	"net/http"
	"strings"

	"go-leavehub/internal/shared/apperror"

	"github.com/google/uuid"
)

const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"

	RequestApproved = "approved"
	RequestRejected = "rejected"
)

var (
	ErrApprovalNotInChain = apperror.New(
		apperror.CodeNotFound,
		"approval does not belong to this request",
		http.StatusNotFound,
	)
	ErrApprovalAlreadyDecided = apperror.New(
		apperror.CodeInvalidState,
		"approval has already been decided",
		http.StatusBadRequest,
	)
	ErrInvalidDecision = apperror.New(
		apperror.CodeInvalidInput,
		"decision must be approved or rejected",
		http.StatusBadRequest,
	)
)

// PendingLevel names the request status awaiting the given level.
func PendingLevel(level int) string {
	return fmt.Sprintf("pending_L%d", level)
}

// InitialStatus is the request status at creation. An employee with no
// supervisors stays here indefinitely; the chain never auto-approves.
func InitialStatus() string {
	return PendingLevel(1)
}

// IsPending reports whether a request status is any pending_L{n}.
func IsPending(status string) bool {
	return strings.HasPrefix(status, "pending_L")
}

// IsTerminal reports whether a request status admits no further transition.
func IsTerminal(status string) bool {
	return status == RequestApproved || status == RequestRejected
}

// Approval is the level-ordered view of one approval row. Status stays
// within {pending, approved, rejected}; pending_L{n} lives only on the
// request.
type Approval struct {
	ID     uuid.UUID
	Level  int
	Status string
}

type Decision string

const (
	DecisionApprove Decision = ApprovalApproved
	DecisionReject  Decision = ApprovalRejected
)

// Outcome describes every write the caller must apply atomically: the acted
// approval's new status, sibling cascades, and the parent request status.
type Outcome struct {
	// RequestStatus is the parent request's next status.
	RequestStatus string
	// Final is true when RequestStatus is terminal; the caller stamps
	// approved_at.
	Final bool
	// AutoApprove lists still-pending approvals at levels below the acted
	// one; a higher authority approving implicitly covers them.
	AutoApprove []uuid.UUID
	// RejectAll lists every approval in the chain when the decision is a
	// rejection; one rejection forces the whole set to rejected.
	RejectAll []uuid.UUID
}

// Progress computes the cascade for acting on one approval. approvals is the
// full chain for the request, read under a row lock so concurrent decisions
// at different levels serialize. It never mutates its inputs.
func Progress(approvals []Approval, actedID uuid.UUID, decision Decision) (Outcome, error) {
	if decision != DecisionApprove && decision != DecisionReject {
		return Outcome{}, ErrInvalidDecision
	}

	var acted *Approval
	for i := range approvals {
		if approvals[i].ID == actedID {
			acted = &approvals[i]
			break
		}
	}
	if acted == nil {
		return Outcome{}, ErrApprovalNotInChain
	}
	if acted.Status != ApprovalPending {
		return Outcome{}, ErrApprovalAlreadyDecided
	}

	if decision == DecisionReject {
		outcome := Outcome{
			RequestStatus: RequestRejected,
			Final:         true,
			RejectAll:     make([]uuid.UUID, 0, len(approvals)),
		}
		for _, a := range approvals {
			outcome.RejectAll = append(outcome.RejectAll, a.ID)
		}
		return outcome, nil
	}

	outcome := Outcome{}
	hasNextLevel := false
	for _, a := range approvals {
		if a.ID == acted.ID {
			continue
		}
		if a.Level < acted.Level && a.Status == ApprovalPending {
			outcome.AutoApprove = append(outcome.AutoApprove, a.ID)
		}
		if a.Level == acted.Level+1 {
			hasNextLevel = true
		}
	}

	if hasNextLevel {
		outcome.RequestStatus = PendingLevel(acted.Level + 1)
	} else {
		outcome.RequestStatus = RequestApproved
		outcome.Final = true
	}

	return outcome, nil
}
