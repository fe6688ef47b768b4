package services

import (
	"net/http"
	"testing"

	apperrors "hospital-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTransitionAllowsDeclaredMoves(t *testing.T) {
	assert.NoError(t, checkTransition(purchaseOrderTransitions, "pending", "approved"))
	assert.NoError(t, checkTransition(purchaseOrderTransitions, "pending", "rejected"))
	assert.NoError(t, checkTransition(deliveryOrderTransitions, "pending", "delivered"))
	assert.NoError(t, checkTransition(deliveryOrderTransitions, "pending", "cancelled"))
	assert.NoError(t, checkTransition(internalRepairTransitions, "pending", "completed"))
	assert.NoError(t, checkTransition(reclamationTransitions, "pending", "in_progress"))
	assert.NoError(t, checkTransition(reclamationTransitions, "in_progress", "resolved"))
	assert.NoError(t, checkTransition(reclamationTransitions, "in_progress", "rejected"))
	assert.NoError(t, checkTransition(besoinTransitions, "pending", "approved"))
	assert.NoError(t, checkTransition(exitFormTransitions, "pending", "rejected"))
}

func TestCheckTransitionSameStatusIsNoOp(t *testing.T) {
	assert.NoError(t, checkTransition(reclamationTransitions, "resolved", "resolved"))
	assert.NoError(t, checkTransition(purchaseOrderTransitions, "approved", "approved"))
}

func TestCheckTransitionRejectsUndeclaredMoves(t *testing.T) {
	cases := []struct {
		name        string
		transitions map[string][]string
		from, to    string
	}{
		{"terminal purchase order", purchaseOrderTransitions, "approved", "pending"},
		{"delivered back to pending", deliveryOrderTransitions, "delivered", "pending"},
		{"repair reopened", internalRepairTransitions, "completed", "pending"},
		{"reclamation skips review", reclamationTransitions, "pending", "resolved"},
		{"besoin rejected then approved", besoinTransitions, "rejected", "approved"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := checkTransition(tc.transitions, tc.from, tc.to)
			require.Error(t, err)
			var httpErr *apperrors.HttpError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		})
	}
}
