package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionOrderedOnlyForward(t *testing.T) {
	seq := []Status{StatusCreated, StatusInTransit, StatusDelivered}

	for i, from := range seq {
		for j, to := range seq {
			got := CanTransition(from, to, seq)
			assert.Equalf(t, j > i, got, "CanTransition(%s, %s)", from, to)
		}
	}
}

func TestLifecycleCheckRejectsSameAndBackward(t *testing.T) {
	l := ChallanLifecycle

	err := l.Check(StatusInTransit, StatusInTransit)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	err = l.Check(StatusDelivered, StatusPending)
	var terr *TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, StatusDelivered, terr.From)
	assert.Equal(t, StatusPending, terr.To)

	assert.NoError(t, l.Check(StatusPending, StatusDelivered))
}

func TestLorryReceiptPendingIsAlternate(t *testing.T) {
	l := LorryReceiptLifecycle

	assert.Equal(t, StatusCreated, l.Initial())
	assert.True(t, l.Has(StatusPending))
	assert.True(t, l.CanTransition(StatusPending, StatusCreated))
	assert.True(t, l.CanTransition(StatusPending, StatusDelivered))
	assert.False(t, l.CanTransition(StatusCreated, StatusPending))
	assert.False(t, l.CanTransition(StatusPending, StatusPending))
}

func TestFreeLifecycleAcceptsAnyMember(t *testing.T) {
	l := DriverLifecycle

	for _, from := range l.Statuses() {
		for _, to := range l.Statuses() {
			assert.Truef(t, l.CanTransition(from, to), "%s -> %s", from, to)
		}
	}

	err := l.Check(StatusActive, StatusMaintenance)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestDerivedLifecycleRejectsCallerStatus(t *testing.T) {
	err := PaymentLifecycle.Check(StatusUnpaid, StatusPaid)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, PaymentLifecycle.Next(StatusUnpaid))
}

func TestLifecycleNext(t *testing.T) {
	assert.Equal(t, []Status{StatusIssued, StatusOverdue, StatusPaid}, InvoiceLifecycle.Next(StatusDraft))
	assert.Equal(t, []Status{StatusPaid}, InvoiceLifecycle.Next(StatusOverdue))
	assert.Empty(t, InvoiceLifecycle.Next(StatusPaid))
	assert.Equal(t, []Status{StatusActive, StatusInactive}, RouteLifecycle.Next(StatusActive))
}
