package service

import (
	"replyflow.app/api/core/config"
	"replyflow.app/api/internal/queue"
	"replyflow.app/api/internal/store"
)

type Services struct {
	stores       *store.Stores
	txRunner     TxRunner
	changes      queue.Producer
	identity     IdentityProvider
	workOSCfg    config.WorkOSConfig
	dashboardURL string
}

func NewServices(
	stores *store.Stores,
	txRunner TxRunner,
	changes queue.Producer,
	identity IdentityProvider,
	workOSCfg config.WorkOSConfig,
	dashboardURL string,
) *Services {
	return &Services{
		stores:       stores,
		txRunner:     txRunner,
		changes:      changes,
		identity:     identity,
		workOSCfg:    workOSCfg,
		dashboardURL: dashboardURL,
	}
}

func (s *Services) Automation() AutomationService {
	return NewAutomationService(s.stores.Keywords(), s.stores.AutomationConfigs(), s.txRunner, s.changes)
}

func (s *Services) Profiles() ProfileService {
	return NewProfileService(s.stores.Profiles())
}

func (s *Services) Auth() AuthService {
	return NewAuthService(
		s.stores.Profiles(),
		s.stores.Sessions(),
		s.identity,
		s.workOSCfg,
		s.dashboardURL,
	)
}
