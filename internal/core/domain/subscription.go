package domain

import "time"

// PushSubscription is one browser endpoint registration belonging to one user.
// A subscription is a send target only while IsActive is true; the push sender
// deletes records whose endpoint the provider reports as permanently gone.
type PushSubscription struct {
	SubscriptionID string    `json:"subscriptionID"`
	UserID         string    `json:"userID"`
	Endpoint       string    `json:"endpoint"`
	P256dhKey      string    `json:"p256dhKey"`
	AuthKey        string    `json:"authKey"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}
