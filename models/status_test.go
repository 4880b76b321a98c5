package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusIsValid(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusApproved, StatusInProgress, StatusCompleted, StatusCancelled} {
		assert.True(t, s.IsValid(), "%v should be valid", s)
	}

	assert.False(t, OrderStatus(-1).IsValid())
	assert.False(t, OrderStatus(5).IsValid())
}

func TestOrderStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusApproved.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestOrderStatusString(t *testing.T) {
	assert.Equal(t, "Pending", StatusPending.String())
	assert.Equal(t, "Cancelled", StatusCancelled.String())
	assert.Equal(t, "Unknown", OrderStatus(99).String())
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "Admin", RoleAdmin.String())
	assert.Equal(t, "User", RoleUser.String())
	assert.Equal(t, "Unknown", Role(0).String())
}
