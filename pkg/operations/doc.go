// Package operations defines the four proxy operations and binds them to
// the dispatch registry: payload contracts as static typed structs, pure
// validators reporting every field violation, and pure normalizers mapping
// provider-shaped raw values into the stable response schema.
//
// Supported operations:
//
//	ListLeagues       {}                                  -> {leagues}
//	GetLeagueMatches  {league_shortcut, league_season}    -> {matches}
//	GetTeam           {team_id}                           -> {team}
//	GetMatch          {match_id}                          -> {match}
//
// Validation is deliberately reflection-free: each validator reads the
// untyped payload map explicitly so the contract is visible in code and the
// full error list is always produced.
package operations
