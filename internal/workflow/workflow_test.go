package workflow_test

import (
	"testing"

	"go-leavehub/internal/workflow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func chain(levels ...int) []workflow.Approval {
	approvals := make([]workflow.Approval, len(levels))
	for i, l := range levels {
		approvals[i] = workflow.Approval{
			ID:     uuid.New(),
			Level:  l,
			Status: workflow.ApprovalPending,
		}
	}
	return approvals
}

func TestProgress_ApproveCascadesLowerLevels(t *testing.T) {
	approvals := chain(1, 2, 3)

	outcome, err := workflow.Progress(approvals, approvals[2].ID, workflow.DecisionApprove)

	assert.NoError(t, err)
	assert.Equal(t, workflow.RequestApproved, outcome.RequestStatus)
	assert.True(t, outcome.Final)
	// levels 1 and 2 were still pending below the acted level 3
	assert.ElementsMatch(t, []uuid.UUID{approvals[0].ID, approvals[1].ID}, outcome.AutoApprove)
	assert.Empty(t, outcome.RejectAll)
}

func TestProgress_ApproveSkipsAlreadyDecidedLowerLevels(t *testing.T) {
	approvals := chain(1, 2, 3)
	approvals[0].Status = workflow.ApprovalApproved

	outcome, err := workflow.Progress(approvals, approvals[2].ID, workflow.DecisionApprove)

	assert.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{approvals[1].ID}, outcome.AutoApprove)
}

func TestProgress_RejectShortCircuits(t *testing.T) {
	approvals := chain(1, 2, 3)
	approvals[0].Status = workflow.ApprovalApproved

	// a level 2 rejection kills the chain regardless of the level 1 approval
	outcome, err := workflow.Progress(approvals, approvals[1].ID, workflow.DecisionReject)

	assert.NoError(t, err)
	assert.Equal(t, workflow.RequestRejected, outcome.RequestStatus)
	assert.True(t, outcome.Final)
	assert.Len(t, outcome.RejectAll, 3)
	assert.Empty(t, outcome.AutoApprove)
}

func TestProgress_AdvanceOrFinish(t *testing.T) {
	t.Run("lower level advances to next pending level", func(t *testing.T) {
		approvals := chain(1, 2)

		outcome, err := workflow.Progress(approvals, approvals[0].ID, workflow.DecisionApprove)

		assert.NoError(t, err)
		assert.Equal(t, "pending_L2", outcome.RequestStatus)
		assert.False(t, outcome.Final)
		assert.Empty(t, outcome.AutoApprove)
	})

	t.Run("highest level finishes the request", func(t *testing.T) {
		approvals := chain(1, 2)
		approvals[0].Status = workflow.ApprovalApproved

		outcome, err := workflow.Progress(approvals, approvals[1].ID, workflow.DecisionApprove)

		assert.NoError(t, err)
		assert.Equal(t, workflow.RequestApproved, outcome.RequestStatus)
		assert.True(t, outcome.Final)
	})

	t.Run("single level chain approves immediately", func(t *testing.T) {
		approvals := chain(1)

		outcome, err := workflow.Progress(approvals, approvals[0].ID, workflow.DecisionApprove)

		assert.NoError(t, err)
		assert.Equal(t, workflow.RequestApproved, outcome.RequestStatus)
		assert.True(t, outcome.Final)
	})

	t.Run("non contiguous levels finish when exact next level is absent", func(t *testing.T) {
		// levels 1 and 3: approving level 1 finishes because no level 2 exists
		approvals := chain(1, 3)

		outcome, err := workflow.Progress(approvals, approvals[0].ID, workflow.DecisionApprove)

		assert.NoError(t, err)
		assert.Equal(t, workflow.RequestApproved, outcome.RequestStatus)
		assert.True(t, outcome.Final)
	})
}

func TestProgress_Guards(t *testing.T) {
	t.Run("unknown approval id", func(t *testing.T) {
		approvals := chain(1, 2)

		_, err := workflow.Progress(approvals, uuid.New(), workflow.DecisionApprove)

		assert.ErrorIs(t, err, workflow.ErrApprovalNotInChain)
	})

	t.Run("already decided approval", func(t *testing.T) {
		approvals := chain(1, 2)
		approvals[0].Status = workflow.ApprovalApproved

		_, err := workflow.Progress(approvals, approvals[0].ID, workflow.DecisionApprove)

		assert.ErrorIs(t, err, workflow.ErrApprovalAlreadyDecided)
	})

	t.Run("invalid decision", func(t *testing.T) {
		approvals := chain(1)

		_, err := workflow.Progress(approvals, approvals[0].ID, workflow.Decision("maybe"))

		assert.ErrorIs(t, err, workflow.ErrInvalidDecision)
	})
}

func TestStatusHelpers(t *testing.T) {
	assert.Equal(t, "pending_L1", workflow.InitialStatus())
	assert.Equal(t, "pending_L4", workflow.PendingLevel(4))
	assert.True(t, workflow.IsPending("pending_L2"))
	assert.False(t, workflow.IsPending("approved"))
	assert.True(t, workflow.IsTerminal("approved"))
	assert.True(t, workflow.IsTerminal("rejected"))
	assert.False(t, workflow.IsTerminal("pending_L1"))
}
