package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstablishmentStatus_IsValid(t *testing.T) {
	for _, s := range []EstablishmentStatus{StatusDraft, StatusPending, StatusActive, StatusSuspended, StatusArchived} {
		assert.True(t, s.IsValid(), "status %s", s)
	}

	assert.False(t, EstablishmentStatus("deleted").IsValid())
	assert.False(t, EstablishmentStatus("").IsValid())
}

func TestEstablishmentStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		name    string
		from    EstablishmentStatus
		to      EstablishmentStatus
		allowed bool
	}{
		{"draft submits to pending", StatusDraft, StatusPending, true},
		{"draft cannot skip moderation", StatusDraft, StatusActive, false},
		{"pending approves to active", StatusPending, StatusActive, true},
		{"pending rejects to draft", StatusPending, StatusDraft, true},
		{"active resubmits to pending", StatusActive, StatusPending, true},
		{"active cannot fall back to draft", StatusActive, StatusDraft, false},
		{"suspended reactivates", StatusSuspended, StatusActive, true},
		{"suspended resubmits to pending", StatusSuspended, StatusPending, true},
		{"suspend is legal from draft", StatusDraft, StatusSuspended, true},
		{"suspend is legal from active", StatusActive, StatusSuspended, true},
		{"archive is legal from pending", StatusPending, StatusArchived, true},
		{"archive is legal from suspended", StatusSuspended, StatusArchived, true},
		{"archived never reactivates", StatusArchived, StatusActive, false},
		{"archived never returns to draft", StatusArchived, StatusDraft, false},
		{"no self transition on suspend", StatusSuspended, StatusSuspended, false},
		{"no self transition on archive", StatusArchived, StatusArchived, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}
