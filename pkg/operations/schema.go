package operations

// Normalized response schema. These shapes are the proxy's stable public
// contract, independent of any upstream wire format.

// LeagueSummary is one league in a ListLeagues response.
type LeagueSummary struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Shortcut string `json:"shortcut"`
	Country  string `json:"country"`
	Season   string `json:"season"`
}

// TeamDetail is one team in match and team responses.
type TeamDetail struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	ShortName string  `json:"short_name"`
	IconURL   *string `json:"icon_url"`
}

// MatchScore is the score block of a match.
type MatchScore struct {
	Home   int    `json:"home"`
	Away   int    `json:"away"`
	Status string `json:"status"`
}

// MatchDetail is one match in match responses.
type MatchDetail struct {
	ID         int        `json:"id"`
	LeagueName string     `json:"league_name"`
	DateTime   string     `json:"date_time"`
	TeamHome   TeamDetail `json:"team_home"`
	TeamAway   TeamDetail `json:"team_away"`
	Score      MatchScore `json:"score"`
	IsFinished bool       `json:"is_finished"`
}

// ListLeaguesResponse is the normalized ListLeagues result.
type ListLeaguesResponse struct {
	Leagues []LeagueSummary `json:"leagues"`
}

// GetLeagueMatchesResponse is the normalized GetLeagueMatches result.
type GetLeagueMatchesResponse struct {
	Matches []MatchDetail `json:"matches"`
}

// GetTeamResponse is the normalized GetTeam result.
type GetTeamResponse struct {
	Team TeamDetail `json:"team"`
}

// GetMatchResponse is the normalized GetMatch result.
type GetMatchResponse struct {
	Match MatchDetail `json:"match"`
}
