package dto

import "github.com/norrapat/notihub/internal/core/domain"

// ChannelSelection mirrors the dashboard's channel checkboxes.
type ChannelSelection struct {
	Email bool `json:"email"`
	Line  bool `json:"line"`
	Push  bool `json:"push"`
}

// DispatchRequest is the dispatch entry point payload. The binding tags catch
// malformed requests at the edge; the dispatch service re-validates the same
// rules so the no-side-effect guarantee does not depend on the transport.
type DispatchRequest struct {
	Message      string           `json:"message" binding:"required,notblank"`
	RecipientIDs []string         `json:"recipientIds" binding:"required,min=1"`
	Channels     ChannelSelection `json:"channels"`
}

// ToDomain converts the payload to the domain dispatch request.
func (r DispatchRequest) ToDomain() domain.DispatchRequest {
	return domain.DispatchRequest{
		Message:      r.Message,
		RecipientIDs: r.RecipientIDs,
		Channels: domain.ChannelSet{
			Email: r.Channels.Email,
			Line:  r.Channels.Line,
			Push:  r.Channels.Push,
		},
	}
}

// DispatchResponse is the structured result returned to the operator. It is
// always populated: partial per-target failures surface only in the counts.
type DispatchResponse struct {
	Success   bool                   `json:"success"`
	SentCount int                    `json:"sentCount"`
	Channels  []domain.ChannelResult `json:"channels,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// ToDispatchResponse converts a domain result to the response shape.
func ToDispatchResponse(res *domain.DispatchResult) DispatchResponse {
	return DispatchResponse{
		Success:   true,
		SentCount: res.SentCount,
		Channels:  res.Channels,
	}
}
