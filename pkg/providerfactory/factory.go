// Package providerfactory constructs the active upstream provider from
// configuration. Exactly one provider is active per process; the selection
// happens once at startup, by name, with no runtime type inspection.
package providerfactory

import (
	"log/slog"

	"sportsgate-hq/sportsgate/pkg/providers"
	"sportsgate-hq/sportsgate/pkg/providers/openliga"
)

// NewProvider creates the provider instance named in the configuration.
//
// Supported providers:
//   - "openliga": the public OpenLigaDB API
//
// An unknown name fails with a ConfigError; this is a startup wiring error,
// not a runtime condition.
func NewProvider(config providers.ProviderConfig) (providers.SportsProvider, error) {
	slog.Debug("creating provider",
		"name", config.Name,
		"base_url", config.BaseURL,
	)

	switch config.Name {
	case "openliga":
		return openliga.New(config), nil
	default:
		return nil, &providers.ConfigError{
			Provider: config.Name,
			Field:    "name",
			Message:  "unknown provider",
		}
	}
}
