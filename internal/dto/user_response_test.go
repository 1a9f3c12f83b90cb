package dto_test

import (
	"testing"

	"github.com/norrapat/notihub/internal/core/domain"
	"github.com/norrapat/notihub/internal/dto"
	"github.com/stretchr/testify/assert"
)

func TestToUserResponse_LineEligibilityIsDerivedFromLink(t *testing.T) {
	// Stored flag off, but a LINE id is linked: shown as reachable.
	linked := domain.User{UserID: "u1", LineUserID: "L1", CanReceiveLine: false}
	assert.True(t, dto.ToUserResponse(&linked).CanReceiveLine)

	// Stored flag on, but no LINE id: shown as unreachable.
	unlinked := domain.User{UserID: "u2", CanReceiveLine: true}
	assert.False(t, dto.ToUserResponse(&unlinked).CanReceiveLine)
}

func TestToUserResponse_StoredFlagsPassThrough(t *testing.T) {
	u := domain.User{
		UserID:          "u1",
		DisplayName:     "Alice",
		Email:           "a@example.com",
		LoginProvider:   domain.ProviderGoogle,
		CanReceiveEmail: true,
		CanReceivePush:  false,
	}
	resp := dto.ToUserResponse(&u)
	assert.Equal(t, "u1", resp.ID)
	assert.Equal(t, "Alice", resp.Name)
	assert.True(t, resp.CanReceiveEmail)
	assert.False(t, resp.CanReceivePush)
	assert.Equal(t, "GOOGLE", resp.LoginProvider)
}
