package openliga

import "sportsgate-hq/sportsgate/pkg/providers"

// Upstream wire format. Field names follow the OpenLigaDB JSON exactly.

type upstreamLeague struct {
	LeagueID       int    `json:"leagueId"`
	LeagueName     string `json:"leagueName"`
	LeagueShortcut string `json:"leagueShortcut"`
	LeagueSeason   string `json:"leagueSeason"`
	Country        string `json:"country"`
}

type upstreamTeam struct {
	TeamID      int    `json:"teamId"`
	TeamName    string `json:"teamName"`
	ShortName   string `json:"shortName"`
	TeamIconURL string `json:"teamIconUrl"`
}

type upstreamResult struct {
	PointsTeam1 int `json:"pointsTeam1"`
	PointsTeam2 int `json:"pointsTeam2"`
}

type upstreamMatch struct {
	MatchID         int              `json:"matchID"`
	LeagueName      string           `json:"leagueName"`
	MatchDateTime   string           `json:"matchDateTime"`
	Team1           upstreamTeam     `json:"team1"`
	Team2           upstreamTeam     `json:"team2"`
	MatchResults    []upstreamResult `json:"matchResults"`
	MatchIsFinished bool             `json:"matchIsFinished"`
}

func (l upstreamLeague) toLeague() providers.League {
	return providers.League{
		ID:       l.LeagueID,
		Name:     l.LeagueName,
		Shortcut: l.LeagueShortcut,
		Country:  l.Country,
		Season:   l.LeagueSeason,
	}
}

func (t upstreamTeam) toTeam() providers.Team {
	return providers.Team{
		ID:        t.TeamID,
		Name:      t.TeamName,
		ShortName: t.ShortName,
		IconURL:   t.TeamIconURL,
	}
}

func (m upstreamMatch) toMatch() providers.Match {
	// The last matchResults entry is the final result; earlier entries are
	// intermediate (half-time) scores.
	score := providers.Score{Status: providers.MatchScheduled}
	if len(m.MatchResults) > 0 {
		final := m.MatchResults[len(m.MatchResults)-1]
		score.Home = final.PointsTeam1
		score.Away = final.PointsTeam2
		if m.MatchIsFinished {
			score.Status = providers.MatchFinished
		} else {
			score.Status = providers.MatchInProgress
		}
	}

	return providers.Match{
		ID:         m.MatchID,
		LeagueName: m.LeagueName,
		DateTime:   m.MatchDateTime,
		Home:       m.Team1.toTeam(),
		Away:       m.Team2.toTeam(),
		Score:      score,
		Finished:   m.MatchIsFinished,
	}
}
