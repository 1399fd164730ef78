package operations

import (
	"context"
	"fmt"

	"sportsgate-hq/sportsgate/pkg/dispatch"
	"sportsgate-hq/sportsgate/pkg/providers"
)

// Operation names exposed by the proxy.
const (
	OpListLeagues      = "ListLeagues"
	OpGetLeagueMatches = "GetLeagueMatches"
	OpGetTeam          = "GetTeam"
	OpGetMatch         = "GetMatch"
)

// RegisterAll binds every supported operation to the given provider and
// registers the descriptors. It is called once during startup wiring; a
// duplicate name aborts wiring.
func RegisterAll(registry *dispatch.Registry, provider providers.SportsProvider) error {
	descriptors := []dispatch.Descriptor{
		{
			Name:     OpListLeagues,
			Fields:   nil,
			Validate: validateListLeagues,
			Call: func(ctx context.Context, _ any) (any, error) {
				return provider.ListLeagues(ctx)
			},
			Normalize: normalizeListLeagues,
		},
		{
			Name: OpGetLeagueMatches,
			Fields: []dispatch.FieldSpec{
				{Name: "league_shortcut", Type: "string", Required: true},
				{Name: "league_season", Type: "string", Required: true},
			},
			Validate: validateGetLeagueMatches,
			Call: func(ctx context.Context, validated any) (any, error) {
				p, ok := validated.(GetLeagueMatchesPayload)
				if !ok {
					return nil, fmt.Errorf("unexpected payload type %T", validated)
				}
				return provider.GetLeagueMatches(ctx, p.LeagueShortcut, p.LeagueSeason)
			},
			Normalize: normalizeLeagueMatches,
		},
		{
			Name: OpGetTeam,
			Fields: []dispatch.FieldSpec{
				{Name: "team_id", Type: "integer", Required: true},
			},
			Validate: validateGetTeam,
			Call: func(ctx context.Context, validated any) (any, error) {
				p, ok := validated.(GetTeamPayload)
				if !ok {
					return nil, fmt.Errorf("unexpected payload type %T", validated)
				}
				return provider.GetTeam(ctx, p.TeamID)
			},
			Normalize: normalizeGetTeam,
		},
		{
			Name: OpGetMatch,
			Fields: []dispatch.FieldSpec{
				{Name: "match_id", Type: "integer", Required: true},
			},
			Validate: validateGetMatch,
			Call: func(ctx context.Context, validated any) (any, error) {
				p, ok := validated.(GetMatchPayload)
				if !ok {
					return nil, fmt.Errorf("unexpected payload type %T", validated)
				}
				return provider.GetMatch(ctx, p.MatchID)
			},
			Normalize: normalizeGetMatch,
		},
	}

	for _, desc := range descriptors {
		if err := registry.Register(desc); err != nil {
			return fmt.Errorf("registering %s: %w", desc.Name, err)
		}
	}
	return nil
}
