package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/norrapat/notihub/internal/core/domain"
	portsrepo "github.com/norrapat/notihub/internal/core/ports/repositories"
	"github.com/norrapat/notihub/internal/models"
	"github.com/norrapat/notihub/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPushSubscriptionRepository struct {
	db *pgxpool.Pool
}

func NewPushSubscriptionRepository(db *pgxpool.Pool) portsrepo.PushSubscriptionRepository {
	return &PgxPushSubscriptionRepository{db: db}
}

// Ensure PgxPushSubscriptionRepository implements portsrepo.PushSubscriptionRepository
var _ portsrepo.PushSubscriptionRepository = (*PgxPushSubscriptionRepository)(nil)

const subscriptionColumns = `subscription_id, user_id, endpoint, p256dh_key, auth_key, is_active, created_at`

func scanSubscription(row pgx.Row) (*models.PushSubscription, error) {
	var m models.PushSubscription
	err := row.Scan(
		&m.SubscriptionID,
		&m.UserID,
		&m.Endpoint,
		&m.P256dhKey,
		&m.AuthKey,
		&m.IsActive,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveSubscription inserts a subscription. A browser re-subscribing with an
// endpoint we already hold just refreshes the keys and re-activates the row,
// keeping its original id; the returned id is always the stored one.
func (r *PgxPushSubscriptionRepository) SaveSubscription(ctx context.Context, sub domain.PushSubscription) (string, error) {
	m := mapping.ToModelPushSubscription(sub)
	query := `
        INSERT INTO push_subscriptions (` + subscriptionColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (endpoint) DO UPDATE SET
            user_id = EXCLUDED.user_id,
            p256dh_key = EXCLUDED.p256dh_key,
            auth_key = EXCLUDED.auth_key,
            is_active = TRUE
        RETURNING subscription_id;
    `
	var storedID string
	err := r.db.QueryRow(ctx, query,
		m.SubscriptionID,
		m.UserID,
		m.Endpoint,
		m.P256dhKey,
		m.AuthKey,
		m.IsActive,
		m.CreatedAt,
	).Scan(&storedID)
	if err != nil {
		return "", fmt.Errorf("failed to save push subscription: %w", err)
	}
	return storedID, nil
}

func (r *PgxPushSubscriptionRepository) FindActiveSubscriptionsByUserID(ctx context.Context, userID string) ([]domain.PushSubscription, error) {
	query := `
        SELECT ` + subscriptionColumns + `
        FROM push_subscriptions
        WHERE user_id = $1 AND is_active = TRUE
        ORDER BY created_at ASC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query push subscriptions: %w", err)
	}
	defer rows.Close()

	modelSubs := []models.PushSubscription{}
	for rows.Next() {
		m, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan push subscription row: %w", err)
		}
		modelSubs = append(modelSubs, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating push subscription rows: %w", rows.Err())
	}
	return mapping.ToDomainPushSubscriptionSlice(modelSubs), nil
}

// DeleteSubscription removes a subscription by id. Deleting a row that is
// already gone is a no-op, callers prune on delivery failures and may race.
func (r *PgxPushSubscriptionRepository) DeleteSubscription(ctx context.Context, subscriptionID string) error {
	query := `DELETE FROM push_subscriptions WHERE subscription_id = $1;`
	_, err := r.db.Exec(ctx, query, subscriptionID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to delete push subscription: %w", err)
	}
	return nil
}
