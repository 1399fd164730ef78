package operations

import (
	"fmt"

	"sportsgate-hq/sportsgate/pkg/providers"
)

// Normalizers map raw provider values into the response schema. They are
// pure functions; any mismatch they report is treated as a fatal contract
// error by the pipeline, never retried.

func normalizeListLeagues(raw any) (any, error) {
	leagues, ok := raw.([]providers.League)
	if !ok {
		return nil, fmt.Errorf("expected []providers.League, got %T", raw)
	}

	out := make([]LeagueSummary, 0, len(leagues))
	for _, l := range leagues {
		out = append(out, LeagueSummary{
			ID:       l.ID,
			Name:     l.Name,
			Shortcut: l.Shortcut,
			Country:  l.Country,
			Season:   l.Season,
		})
	}
	return ListLeaguesResponse{Leagues: out}, nil
}

func normalizeLeagueMatches(raw any) (any, error) {
	matches, ok := raw.([]providers.Match)
	if !ok {
		return nil, fmt.Errorf("expected []providers.Match, got %T", raw)
	}

	out := make([]MatchDetail, 0, len(matches))
	for _, m := range matches {
		detail, err := normalizeMatch(m)
		if err != nil {
			return nil, err
		}
		out = append(out, detail)
	}
	return GetLeagueMatchesResponse{Matches: out}, nil
}

func normalizeGetTeam(raw any) (any, error) {
	team, ok := raw.(providers.Team)
	if !ok {
		return nil, fmt.Errorf("expected providers.Team, got %T", raw)
	}
	return GetTeamResponse{Team: normalizeTeam(team)}, nil
}

func normalizeGetMatch(raw any) (any, error) {
	match, ok := raw.(providers.Match)
	if !ok {
		return nil, fmt.Errorf("expected providers.Match, got %T", raw)
	}
	if match.ID == 0 {
		return nil, fmt.Errorf("match without upstream id")
	}

	detail, err := normalizeMatch(match)
	if err != nil {
		return nil, err
	}
	return GetMatchResponse{Match: detail}, nil
}

func normalizeMatch(m providers.Match) (MatchDetail, error) {
	switch m.Score.Status {
	case providers.MatchScheduled, providers.MatchInProgress, providers.MatchFinished:
	default:
		return MatchDetail{}, fmt.Errorf("match %d has invalid score status %q", m.ID, m.Score.Status)
	}

	return MatchDetail{
		ID:         m.ID,
		LeagueName: m.LeagueName,
		DateTime:   m.DateTime,
		TeamHome:   normalizeTeam(m.Home),
		TeamAway:   normalizeTeam(m.Away),
		Score: MatchScore{
			Home:   m.Score.Home,
			Away:   m.Score.Away,
			Status: m.Score.Status,
		},
		IsFinished: m.Finished,
	}, nil
}

func normalizeTeam(t providers.Team) TeamDetail {
	detail := TeamDetail{
		ID:        t.ID,
		Name:      t.Name,
		ShortName: t.ShortName,
	}
	if t.IconURL != "" {
		url := t.IconURL
		detail.IconURL = &url
	}
	return detail
}
