package dto

// UpdateChannelsRequest toggles a user's stored channel eligibility flags.
// Pointers differentiate omitted fields from explicit false.
type UpdateChannelsRequest struct {
	Email *bool `json:"email"`
	Line  *bool `json:"line"`
	Push  *bool `json:"push"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=100"`
	Offset int `form:"offset,default=0"`
}
