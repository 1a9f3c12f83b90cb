package domain

import "time"

// AuthProvider identifies how a user last authenticated.
type AuthProvider string

const (
	ProviderCredentials AuthProvider = "CREDENTIALS"
	ProviderGoogle      AuthProvider = "GOOGLE"
	ProviderLine        AuthProvider = "LINE"
)

// User represents a registered recipient (and potential operator) of the system.
// The three CanReceive flags are the stored halves of channel eligibility; the
// channel-specific identifying data (Email, LineUserID, push subscriptions)
// are the other halves, combined per channel in the eligibility filter.
type User struct {
	UserID        string       `json:"userID"`
	Username      string       `json:"username"`
	PasswordHash  string       `json:"-"`
	DisplayName   string       `json:"displayName"`
	PictureURL    string       `json:"pictureURL,omitempty"`
	Email         string       `json:"email,omitempty"`
	LineUserID    string       `json:"lineUserID,omitempty"`
	LoginProvider AuthProvider `json:"loginProvider"`

	CanReceiveEmail bool `json:"canReceiveEmail"`
	CanReceiveLine  bool `json:"canReceiveLine"`
	CanReceivePush  bool `json:"canReceivePush"`

	// GoogleRefreshToken is the long-lived credential used to mint Gmail
	// access tokens for sending on this user's behalf. Stored verbatim
	// because it has to be replayed to Google's token endpoint.
	GoogleRefreshToken string `json:"-"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// GoogleUserInfo is the profile payload returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// LineProfile is the profile payload returned by the LINE Login profile endpoint.
type LineProfile struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	PictureURL  string `json:"pictureUrl"`
}
