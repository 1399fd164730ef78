package providers

import "time"

// League is the provider-shaped summary of one league.
type League struct {
	// ID is the upstream league identifier.
	ID int

	// Name is the full league name (e.g. "1. Fußball-Bundesliga").
	Name string

	// Shortcut is the upstream league key (e.g. "bl1").
	Shortcut string

	// Country the league is played in.
	Country string

	// Season is the season the upstream reports as current.
	Season string
}

// Team is the provider-shaped view of one team.
type Team struct {
	// ID is the upstream team identifier.
	ID int

	// Name is the full team name.
	Name string

	// ShortName is the abbreviated team name.
	ShortName string

	// IconURL points at the team crest; empty when the upstream has none.
	IconURL string
}

// Score is the current or final score of a match.
type Score struct {
	Home int
	Away int

	// Status is one of "scheduled", "in_progress", "finished".
	Status string
}

// Match score status values.
const (
	MatchScheduled  = "scheduled"
	MatchInProgress = "in_progress"
	MatchFinished   = "finished"
)

// Match is the provider-shaped view of one match.
type Match struct {
	// ID is the upstream match identifier.
	ID int

	// LeagueName names the league the match belongs to.
	LeagueName string

	// DateTime is the scheduled kickoff as reported upstream.
	DateTime string

	// Home and Away are the participating teams.
	Home Team
	Away Team

	// Score is the latest known result; zeroes with status "scheduled"
	// before kickoff.
	Score Score

	// Finished reports whether the upstream marked the match final.
	Finished bool
}

// ProviderHealth tracks request accounting for a provider instance.
type ProviderHealth struct {
	// IsHealthy indicates whether the provider is currently healthy.
	IsHealthy bool

	// LastCheck is the timestamp of the last health check or request.
	LastCheck time.Time

	// LastError is the most recent error encountered (nil if healthy).
	LastError error

	// ConsecutiveFailures counts sequential failures.
	ConsecutiveFailures int

	// TotalRequests is the total number of upstream requests sent.
	TotalRequests int64

	// FailedRequests is the total number of failed upstream requests.
	FailedRequests int64
}

// ProviderConfig contains configuration for a single provider instance.
type ProviderConfig struct {
	// Name is the provider identifier (e.g. "openliga").
	Name string

	// BaseURL is the upstream API base URL. Empty selects the adapter's
	// default endpoint.
	BaseURL string

	// Timeout is the per-request timeout.
	Timeout time.Duration

	// MaxIdleConns is the maximum number of idle connections in the pool.
	MaxIdleConns int

	// MaxIdleConnsPerHost is the maximum idle connections per host.
	MaxIdleConnsPerHost int

	// IdleConnTimeout is how long an idle connection remains in the pool.
	IdleConnTimeout time.Duration
}
