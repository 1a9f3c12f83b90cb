package services

import (
	portsrepo "github.com/norrapat/notihub/internal/core/ports/repositories"
	portssvc "github.com/norrapat/notihub/internal/core/ports/services"
	"github.com/norrapat/notihub/internal/platform/config"
)

// NewServiceContainer wires every service onto the repositories and
// configuration.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	userSvc := NewUserService(repos.UserRepo)

	dispatchSvc := NewDispatchService(repos.UserRepo,
		NewEmailSender(cfg, repos.UserRepo),
		NewLineSender(cfg),
		NewPushSender(cfg, repos.SubscriptionRepo),
	)

	return &portssvc.ServiceContainer{
		User:         userSvc,
		Token:        NewTokenService(cfg),
		GoogleOAuth:  NewGoogleOAuthService(cfg),
		LineOAuth:    NewLineOAuthService(cfg),
		Subscription: NewSubscriptionService(repos.UserRepo, repos.SubscriptionRepo),
		Dispatch:     dispatchSvc,
	}
}
