package dto

// RegisterRequest defines the payload for credential registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegisterResponse is returned on successful registration. The user id is
// needed by the client to register a push subscription right away.
type RegisterResponse struct {
	UserID string `json:"userId"`
}

// LoginRequest defines the payload for credential login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session token. The same token is also set as the
// session cookie; the body copy serves non-browser clients.
type LoginResponse struct {
	Token string `json:"token"`
}
