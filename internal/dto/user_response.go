package dto

import (
	"time"

	"github.com/norrapat/notihub/internal/core/domain"
)

// UserResponse is the directory entry shape consumed by the dashboard.
//
// CanReceiveLine is derived, not stored: a user is shown as LINE-reachable
// exactly when a LINE user id is on record, regardless of the stored flag.
// The dispatch-side line filter applies the same rule, so the directory and
// the fan-out never disagree.
type UserResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Image           string    `json:"image,omitempty"`
	Email           string    `json:"email,omitempty"`
	LineUserID      string    `json:"lineUserId,omitempty"`
	LoginProvider   string    `json:"loginProvider"`
	CanReceiveEmail bool      `json:"canReceiveEmail"`
	CanReceiveLine  bool      `json:"canReceiveLine"`
	CanReceivePush  bool      `json:"canReceivePush"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain User to the directory entry shape.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:              u.UserID,
		Name:            u.DisplayName,
		Image:           u.PictureURL,
		Email:           u.Email,
		LineUserID:      u.LineUserID,
		LoginProvider:   string(u.LoginProvider),
		CanReceiveEmail: u.CanReceiveEmail,
		CanReceiveLine:  u.LineUserID != "",
		CanReceivePush:  u.CanReceivePush,
		CreatedAt:       u.CreatedAt,
	}
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: userResponses}
}
