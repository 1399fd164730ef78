package operations

import (
	"math"

	"sportsgate-hq/sportsgate/pkg/dispatch"
)

// Validated payload types. One static struct per operation; no reflection.

// ListLeaguesPayload carries no fields.
type ListLeaguesPayload struct{}

// GetLeagueMatchesPayload identifies a league season.
type GetLeagueMatchesPayload struct {
	LeagueShortcut string
	LeagueSeason   string
}

// GetTeamPayload identifies a team.
type GetTeamPayload struct {
	TeamID int
}

// GetMatchPayload identifies a match.
type GetMatchPayload struct {
	MatchID int
}

// Field violation kinds reported by the validators.
const (
	violationMissing = "missing"
	violationString  = "string_type"
	violationInt     = "int_type"
)

// validateListLeagues accepts any payload; the operation takes no fields
// and extras are ignored.
func validateListLeagues(payload map[string]any) (any, []dispatch.FieldError) {
	return ListLeaguesPayload{}, nil
}

// validateGetLeagueMatches checks league_shortcut and league_season.
// Both fields are checked regardless of earlier failures so the error list
// is always complete.
func validateGetLeagueMatches(payload map[string]any) (any, []dispatch.FieldError) {
	var errs []dispatch.FieldError

	shortcut, errs := requireString(payload, "league_shortcut", errs)
	season, errs := requireString(payload, "league_season", errs)

	if len(errs) > 0 {
		return nil, errs
	}
	return GetLeagueMatchesPayload{LeagueShortcut: shortcut, LeagueSeason: season}, nil
}

// validateGetTeam checks team_id.
func validateGetTeam(payload map[string]any) (any, []dispatch.FieldError) {
	var errs []dispatch.FieldError

	teamID, errs := requireInt(payload, "team_id", errs)

	if len(errs) > 0 {
		return nil, errs
	}
	return GetTeamPayload{TeamID: teamID}, nil
}

// validateGetMatch checks match_id.
func validateGetMatch(payload map[string]any) (any, []dispatch.FieldError) {
	var errs []dispatch.FieldError

	matchID, errs := requireInt(payload, "match_id", errs)

	if len(errs) > 0 {
		return nil, errs
	}
	return GetMatchPayload{MatchID: matchID}, nil
}

// requireString extracts a required string field, appending the violation
// to errs when absent or mistyped.
func requireString(payload map[string]any, field string, errs []dispatch.FieldError) (string, []dispatch.FieldError) {
	value, present := payload[field]
	if !present || value == nil {
		return "", append(errs, dispatch.FieldError{
			Field:   field,
			Message: "field required",
			Type:    violationMissing,
		})
	}

	s, ok := value.(string)
	if !ok {
		return "", append(errs, dispatch.FieldError{
			Field:   field,
			Message: "must be a string",
			Type:    violationString,
		})
	}
	return s, errs
}

// requireInt extracts a required integer field. JSON numbers arrive as
// float64; only integral values are accepted.
func requireInt(payload map[string]any, field string, errs []dispatch.FieldError) (int, []dispatch.FieldError) {
	value, present := payload[field]
	if !present || value == nil {
		return 0, append(errs, dispatch.FieldError{
			Field:   field,
			Message: "field required",
			Type:    violationMissing,
		})
	}

	switch v := value.(type) {
	case int:
		return v, errs
	case float64:
		if v == math.Trunc(v) {
			return int(v), errs
		}
	}

	return 0, append(errs, dispatch.FieldError{
		Field:   field,
		Message: "must be an integer",
		Type:    violationInt,
	})
}
