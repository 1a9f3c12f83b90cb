package pgsql

import (
	portsrepo "github.com/norrapat/notihub/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository onto a shared pool.
func NewRepositoryProvider(db *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:         NewUserRepository(db),
		SubscriptionRepo: NewPushSubscriptionRepository(db),
	}
}
