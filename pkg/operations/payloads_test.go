package operations

import (
	"testing"

	"sportsgate-hq/sportsgate/pkg/dispatch"
)

func TestValidateListLeagues_IgnoresExtras(t *testing.T) {
	validated, errs := validateListLeagues(map[string]any{"whatever": 1})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if _, ok := validated.(ListLeaguesPayload); !ok {
		t.Fatalf("expected ListLeaguesPayload, got %T", validated)
	}
}

func TestValidateGetLeagueMatches(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		want    []dispatch.FieldError
	}{
		{
			name:    "valid",
			payload: map[string]any{"league_shortcut": "bl1", "league_season": "2024"},
		},
		{
			name:    "both missing",
			payload: map[string]any{},
			want: []dispatch.FieldError{
				{Field: "league_shortcut", Message: "field required", Type: "missing"},
				{Field: "league_season", Message: "field required", Type: "missing"},
			},
		},
		{
			name:    "one missing one mistyped",
			payload: map[string]any{"league_shortcut": 7},
			want: []dispatch.FieldError{
				{Field: "league_shortcut", Message: "must be a string", Type: "string_type"},
				{Field: "league_season", Message: "field required", Type: "missing"},
			},
		},
		{
			name:    "null counts as missing",
			payload: map[string]any{"league_shortcut": "bl1", "league_season": nil},
			want: []dispatch.FieldError{
				{Field: "league_season", Message: "field required", Type: "missing"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validated, errs := validateGetLeagueMatches(tt.payload)
			if len(errs) != len(tt.want) {
				t.Fatalf("expected %d errors, got %d: %v", len(tt.want), len(errs), errs)
			}
			for i, want := range tt.want {
				if errs[i] != want {
					t.Errorf("error %d: expected %+v, got %+v", i, want, errs[i])
				}
			}
			if len(tt.want) == 0 {
				p, ok := validated.(GetLeagueMatchesPayload)
				if !ok {
					t.Fatalf("expected GetLeagueMatchesPayload, got %T", validated)
				}
				if p.LeagueShortcut != "bl1" || p.LeagueSeason != "2024" {
					t.Errorf("unexpected payload %+v", p)
				}
			}
		})
	}
}

func TestValidateGetMatch(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		wantID  int
		want    []dispatch.FieldError
	}{
		{name: "int value", payload: map[string]any{"match_id": 70504}, wantID: 70504},
		{name: "integral float from json", payload: map[string]any{"match_id": float64(70504)}, wantID: 70504},
		{
			name:    "missing",
			payload: map[string]any{},
			want:    []dispatch.FieldError{{Field: "match_id", Message: "field required", Type: "missing"}},
		},
		{
			name:    "fractional rejected",
			payload: map[string]any{"match_id": 70504.5},
			want:    []dispatch.FieldError{{Field: "match_id", Message: "must be an integer", Type: "int_type"}},
		},
		{
			name:    "string rejected",
			payload: map[string]any{"match_id": "70504"},
			want:    []dispatch.FieldError{{Field: "match_id", Message: "must be an integer", Type: "int_type"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validated, errs := validateGetMatch(tt.payload)
			if len(errs) != len(tt.want) {
				t.Fatalf("expected %d errors, got %d: %v", len(tt.want), len(errs), errs)
			}
			for i, want := range tt.want {
				if errs[i] != want {
					t.Errorf("error %d: expected %+v, got %+v", i, want, errs[i])
				}
			}
			if len(tt.want) == 0 {
				p := validated.(GetMatchPayload)
				if p.MatchID != tt.wantID {
					t.Errorf("expected match id %d, got %d", tt.wantID, p.MatchID)
				}
			}
		})
	}
}

func TestValidateGetTeam_MistypedReportsIntType(t *testing.T) {
	_, errs := validateGetTeam(map[string]any{"team_id": true})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if errs[0].Type != "int_type" {
		t.Errorf("expected int_type violation, got %q", errs[0].Type)
	}
}
