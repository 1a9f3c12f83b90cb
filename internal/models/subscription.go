package models

import "time"

// PushSubscription is the persisted shape of a browser push registration.
type PushSubscription struct {
	SubscriptionID string    `db:"subscription_id"`
	UserID         string    `db:"user_id"`
	Endpoint       string    `db:"endpoint"`
	P256dhKey      string    `db:"p256dh_key"`
	AuthKey        string    `db:"auth_key"`
	IsActive       bool      `db:"is_active"`
	CreatedAt      time.Time `db:"created_at"`
}
