package providers

import "context"

// SportsProvider is the capability interface all upstream adapters implement.
// One method per operation; each performs a single upstream call and maps
// the response into provider-shaped raw values ready for normalization.
//
// All methods accept a context.Context for cancellation and timeout control
// and must return promptly when the context is cancelled.
type SportsProvider interface {
	// ListLeagues returns the leagues available upstream.
	ListLeagues(ctx context.Context) ([]League, error)

	// GetLeagueMatches returns all matches of a league season, identified
	// by the league's shortcut (e.g. "bl1") and season (e.g. "2024").
	GetLeagueMatches(ctx context.Context, leagueShortcut, leagueSeason string) ([]Match, error)

	// GetTeam returns team details by upstream team id.
	GetTeam(ctx context.Context, teamID int) (Team, error)

	// GetMatch returns a single match by upstream match id.
	// A match unknown upstream fails with a ProviderError carrying 404.
	GetMatch(ctx context.Context, matchID int) (Match, error)

	// HealthCheck verifies the upstream is reachable with a lightweight
	// request. Returns nil when healthy.
	HealthCheck(ctx context.Context) error

	// Name returns the provider's configured name (e.g. "openliga").
	Name() string

	// Health returns current health accounting for the provider.
	Health() ProviderHealth

	// Close releases the provider's resources. After Close the provider
	// must not be used.
	Close() error
}
