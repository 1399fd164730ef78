// Package openliga implements the SportsProvider adapter for the public
// OpenLigaDB API (https://api.openligadb.de).
package openliga

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"sportsgate-hq/sportsgate/pkg/providers"
)

// DefaultBaseURL is the public OpenLigaDB endpoint.
const DefaultBaseURL = "https://api.openligadb.de"

// Client is the OpenLigaDB adapter. It embeds HTTPProvider for pooling,
// timeouts, and health accounting, and maps the upstream wire format into
// provider-shaped values.
type Client struct {
	*providers.HTTPProvider

	baseURL string
}

// New creates an OpenLigaDB provider from the given configuration.
// An empty BaseURL selects the public endpoint.
func New(config providers.ProviderConfig) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}

	return &Client{
		HTTPProvider: providers.NewHTTPProvider(config),
		baseURL:      config.BaseURL,
	}
}

// ListLeagues returns the leagues available upstream.
func (c *Client) ListLeagues(ctx context.Context) ([]providers.League, error) {
	var raw []upstreamLeague
	url := fmt.Sprintf("%s/getavailableleagues", c.baseURL)
	if err := c.GetJSON(ctx, url, &raw); err != nil {
		return nil, err
	}

	leagues := make([]providers.League, 0, len(raw))
	for _, l := range raw {
		leagues = append(leagues, l.toLeague())
	}
	return leagues, nil
}

// GetLeagueMatches returns all matches of a league season.
func (c *Client) GetLeagueMatches(ctx context.Context, leagueShortcut, leagueSeason string) ([]providers.Match, error) {
	var raw []upstreamMatch
	url := fmt.Sprintf("%s/getmatchdata/%s/%s", c.baseURL, leagueShortcut, leagueSeason)
	if err := c.GetJSON(ctx, url, &raw); err != nil {
		return nil, err
	}

	matches := make([]providers.Match, 0, len(raw))
	for _, m := range raw {
		match := m.toMatch()
		// The per-season endpoint omits leagueName on some records.
		if match.LeagueName == "" {
			match.LeagueName = leagueShortcut
		}
		matches = append(matches, match)
	}
	return matches, nil
}

// GetTeam returns team details by upstream team id.
func (c *Client) GetTeam(ctx context.Context, teamID int) (providers.Team, error) {
	var raw upstreamTeam
	url := fmt.Sprintf("%s/getteam/%d", c.baseURL, teamID)
	if err := c.GetJSON(ctx, url, &raw); err != nil {
		return providers.Team{}, err
	}
	return raw.toTeam(), nil
}

// GetMatch returns a single match by upstream match id.
//
// The upstream serves this endpoint as either a single object or a
// one-element array depending on the match; both shapes are accepted.
// Missing or empty match data fails with a 404 ProviderError.
func (c *Client) GetMatch(ctx context.Context, matchID int) (providers.Match, error) {
	var raw json.RawMessage
	url := fmt.Sprintf("%s/getmatchdata/%d", c.baseURL, matchID)
	if err := c.GetJSON(ctx, url, &raw); err != nil {
		return providers.Match{}, err
	}

	m, ok := decodeMatchPayload(raw)
	if !ok {
		return providers.Match{}, &providers.ProviderError{
			Provider:   c.Name(),
			StatusCode: http.StatusNotFound,
			Message:    fmt.Sprintf("match %d not found", matchID),
		}
	}
	return m.toMatch(), nil
}

// HealthCheck pings the cheapest upstream endpoint.
func (c *Client) HealthCheck(ctx context.Context) error {
	var raw []upstreamLeague
	url := fmt.Sprintf("%s/getavailableleagues", c.baseURL)
	return c.GetJSON(ctx, url, &raw)
}

// decodeMatchPayload accepts the object and one-element-array shapes of the
// match endpoint. Returns false for null, empty arrays, and unusable bodies.
func decodeMatchPayload(raw json.RawMessage) (upstreamMatch, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return upstreamMatch{}, false
	}

	if trimmed[0] == '[' {
		var list []upstreamMatch
		if err := json.Unmarshal(trimmed, &list); err != nil || len(list) == 0 {
			return upstreamMatch{}, false
		}
		return list[0], true
	}

	var m upstreamMatch
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return upstreamMatch{}, false
	}
	return m, true
}
