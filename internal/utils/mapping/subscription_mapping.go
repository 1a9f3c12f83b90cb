package mapping

import (
	"github.com/norrapat/notihub/internal/core/domain"
	"github.com/norrapat/notihub/internal/models"
)

// ToModelPushSubscription converts a domain PushSubscription to its model.
func ToModelPushSubscription(d domain.PushSubscription) models.PushSubscription {
	return models.PushSubscription{
		SubscriptionID: d.SubscriptionID,
		UserID:         d.UserID,
		Endpoint:       d.Endpoint,
		P256dhKey:      d.P256dhKey,
		AuthKey:        d.AuthKey,
		IsActive:       d.IsActive,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainPushSubscription converts a model PushSubscription to its domain type.
func ToDomainPushSubscription(m models.PushSubscription) domain.PushSubscription {
	return domain.PushSubscription{
		SubscriptionID: m.SubscriptionID,
		UserID:         m.UserID,
		Endpoint:       m.Endpoint,
		P256dhKey:      m.P256dhKey,
		AuthKey:        m.AuthKey,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
	}
}

// ToDomainPushSubscriptionSlice converts a slice of models to domain types.
func ToDomainPushSubscriptionSlice(ms []models.PushSubscription) []domain.PushSubscription {
	ds := make([]domain.PushSubscription, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPushSubscription(m)
	}
	return ds
}
