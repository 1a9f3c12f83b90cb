package dto

// WebPushKeys are the client keys from the browser's PushSubscription.
type WebPushKeys struct {
	P256dh string `json:"p256dh" binding:"required"`
	Auth   string `json:"auth" binding:"required"`
}

// WebPushSubscription mirrors the browser PushSubscription JSON shape.
type WebPushSubscription struct {
	Endpoint string      `json:"endpoint" binding:"required,url"`
	Keys     WebPushKeys `json:"keys" binding:"required"`
}

// SubscribeRequest registers a browser push subscription for a user.
type SubscribeRequest struct {
	UserID       string              `json:"userId" binding:"required"`
	Subscription WebPushSubscription `json:"subscription" binding:"required"`
}

// SubscribeResponse acknowledges a stored subscription.
type SubscribeResponse struct {
	SubscriptionID string `json:"subscriptionId"`
}
