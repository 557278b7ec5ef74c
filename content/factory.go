package content

import (
	"github.com/botthef/personal-site-backend/config"
	"github.com/botthef/personal-site-backend/database"
)

// NewService selects the content backend from the injected configuration.
// The mock backend is the default; live storage must be opted into
// explicitly. Selection is deterministic given the config, so callers may
// construct once at startup and share the result.
func NewService(cfg config.Config, store database.Store) Service {
	if cfg.UseMock {
		return NewMockService()
	}
	return NewAWSService(store)
}
