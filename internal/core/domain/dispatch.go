package domain

// Channel is one delivery mechanism.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelLine  Channel = "line"
	ChannelPush  Channel = "push"
)

// DispatchRequest is one operator-submitted broadcast. It is never persisted.
type DispatchRequest struct {
	Message      string
	RecipientIDs []string
	Channels     ChannelSet
}

// ChannelSet is the set of channels enabled for a dispatch.
type ChannelSet struct {
	Email bool
	Line  bool
	Push  bool
}

// None reports whether no channel is enabled.
func (s ChannelSet) None() bool {
	return !s.Email && !s.Line && !s.Push
}

// Enabled returns the enabled channels in stable order.
func (s ChannelSet) Enabled() []Channel {
	var out []Channel
	if s.Email {
		out = append(out, ChannelEmail)
	}
	if s.Line {
		out = append(out, ChannelLine)
	}
	if s.Push {
		out = append(out, ChannelPush)
	}
	return out
}

// Target is the channel-specific address resolved for one recipient on one
// channel. For the push channel Address is empty; the sender resolves the
// user's active subscriptions itself.
type Target struct {
	Channel Channel
	UserID  string
	Address string
}

// SendOutcome records the result of one per-target send attempt.
// Failures are collected, never propagated to sibling sends.
type SendOutcome struct {
	Channel Channel
	UserID  string
	Err     error
}

// ChannelResult aggregates outcomes for one channel within a dispatch.
type ChannelResult struct {
	Channel   Channel `json:"channel"`
	Attempted int     `json:"attempted"`
	Sent      int     `json:"sent"`
	Failed    int     `json:"failed"`
}

// DispatchResult is the per-dispatch summary surfaced to the operator.
type DispatchResult struct {
	SentCount int             `json:"sentCount"`
	Channels  []ChannelResult `json:"channels"`
}
