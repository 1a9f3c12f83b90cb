package services

import "github.com/norrapat/notihub/internal/core/domain"

// FilterTargets resolves the recipients eligible for one channel into send
// targets. Each channel combines its stored opt-in flag and its identifying
// data differently:
//
//   - email: the flag must be set AND an address must be on record.
//   - line:  a linked LINE user id alone decides; the stored flag is not
//     consulted, so a user who relinks LINE stays reachable even if the flag
//     drifted out of date.
//   - push:  the flag alone decides; the push sender resolves the user's
//     subscriptions itself, and a flagged user without any simply produces
//     zero sends.
func FilterTargets(channel domain.Channel, users []domain.User) []domain.Target {
	targets := []domain.Target{}
	for _, u := range users {
		switch channel {
		case domain.ChannelEmail:
			if u.CanReceiveEmail && u.Email != "" {
				targets = append(targets, domain.Target{Channel: channel, UserID: u.UserID, Address: u.Email})
			}
		case domain.ChannelLine:
			if u.LineUserID != "" {
				targets = append(targets, domain.Target{Channel: channel, UserID: u.UserID, Address: u.LineUserID})
			}
		case domain.ChannelPush:
			if u.CanReceivePush {
				targets = append(targets, domain.Target{Channel: channel, UserID: u.UserID})
			}
		}
	}
	return targets
}
