package services_test

import (
	"testing"

	"github.com/norrapat/notihub/internal/core/domain"
	"github.com/norrapat/notihub/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestFilterTargets_Email(t *testing.T) {
	users := []domain.User{
		{UserID: "u1", Email: "a@example.com", CanReceiveEmail: true},
		{UserID: "u2", Email: "", CanReceiveEmail: true},               // flag without address
		{UserID: "u3", Email: "c@example.com", CanReceiveEmail: false}, // address without flag
	}

	targets := services.FilterTargets(domain.ChannelEmail, users)

	assert.Len(t, targets, 1)
	assert.Equal(t, "u1", targets[0].UserID)
	assert.Equal(t, "a@example.com", targets[0].Address)
}

func TestFilterTargets_LineIgnoresStoredFlag(t *testing.T) {
	users := []domain.User{
		{UserID: "u1", LineUserID: "L1", CanReceiveLine: false},
		{UserID: "u2", LineUserID: "", CanReceiveLine: true},
		{UserID: "u3", LineUserID: "L3", CanReceiveLine: true},
	}

	targets := services.FilterTargets(domain.ChannelLine, users)

	// The linked id decides alone; u1's stale flag does not exclude them and
	// u2's flag without a link does not include them.
	assert.Len(t, targets, 2)
	assert.Equal(t, "u1", targets[0].UserID)
	assert.Equal(t, "L1", targets[0].Address)
	assert.Equal(t, "u3", targets[1].UserID)
}

func TestFilterTargets_PushFlagOnly(t *testing.T) {
	users := []domain.User{
		{UserID: "u1", CanReceivePush: true},
		{UserID: "u2", CanReceivePush: false},
	}

	targets := services.FilterTargets(domain.ChannelPush, users)

	assert.Len(t, targets, 1)
	assert.Equal(t, "u1", targets[0].UserID)
	assert.Empty(t, targets[0].Address)
}

func TestFilterTargets_EmptyInput(t *testing.T) {
	assert.Empty(t, services.FilterTargets(domain.ChannelEmail, nil))
	assert.Empty(t, services.FilterTargets(domain.ChannelPush, []domain.User{}))
}
