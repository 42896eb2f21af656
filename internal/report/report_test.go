package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yoshi-675/sl-political-war-tracker/internal/domain"
)

var runTime = time.Date(2026, time.August, 26, 12, 0, 0, 0, time.UTC)

func trackedPlayers() []domain.Player {
	return []domain.Player{
		{ID: "anura", Names: []string{"anura"}},
		{ID: "dilith", Names: []string{"dilith"}},
		{ID: "sajith", Names: []string{"sajith"}},
		{ID: "namal", Names: []string{"namal"}},
	}
}

func defaultRules() Rules {
	return Rules{
		Moves: []MoveRule{
			{
				PlayerID:  "anura",
				WhenTrend: domain.TrendFalling,
				Then:      domain.PlayerPrediction{Move: "Emergency populist measure (fuel subsidy/teacher wage hike)", Confidence: 0.82, Timing: "24-48 hours"},
				Else:      domain.PlayerPrediction{Move: "Continue IMF path, ignore opposition", Confidence: 0.75, Timing: "Ongoing"},
			},
			{
				PlayerID:  "dilith",
				WhenTrend: domain.TrendRising,
				Then:      domain.PlayerPrediction{Move: "Escalate attacks, formalize opposition coalition", Confidence: 0.79, Timing: "Next week"},
				Else:      domain.PlayerPrediction{Move: "Consolidate gains, prepare for Budget battle", Confidence: 0.71, Timing: "2 weeks"},
			},
		},
		Coalition: CoalitionRule{
			Members:        []string{"dilith", "sajith", "namal"},
			ShareThreshold: 0.6,
			Then:           domain.CoalitionPrediction{FormationProbability: 0.73, Timeline: "2-4 weeks", Leader: "dilith"},
			Else:           domain.CoalitionPrediction{FormationProbability: 0.45, Timeline: "Uncertain", Leader: "none"},
		},
	}
}

func metricsWith(stats map[string]*domain.PlayerStats) domain.Metrics {
	players := map[string]*domain.PlayerStats{}
	total := 0
	for _, p := range trackedPlayers() {
		s, ok := stats[p.ID]
		if !ok {
			s = &domain.PlayerStats{Headlines: []domain.Headline{}}
		}
		players[p.ID] = s
		total += s.Mentions
	}
	return domain.Metrics{Players: players, TotalMentions: total, Timestamp: runTime}
}

func TestStatusPosture(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stats domain.PlayerStats
		want  string
	}{
		{
			name:  "attacking above ratio",
			stats: domain.PlayerStats{Mentions: 5, Negative: 3, Positive: 1, Neutral: 1},
			want:  domain.PostureAttacking,
		},
		{
			name:  "defending above ratio",
			stats: domain.PlayerStats{Mentions: 5, Positive: 3, Negative: 1, Neutral: 1},
			want:  domain.PostureDefending,
		},
		{
			// Both ratios clear 0.4; the attack check runs first.
			name:  "attack wins over defense",
			stats: domain.PlayerStats{Mentions: 2, Negative: 1, Positive: 1},
			want:  domain.PostureAttacking,
		},
		{
			name:  "ratio at threshold stays neutral",
			stats: domain.PlayerStats{Mentions: 5, Negative: 2, Positive: 2, Neutral: 1},
			want:  domain.PostureNeutral,
		},
		{
			name:  "zero mentions",
			stats: domain.PlayerStats{},
			want:  domain.PostureNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statusFor(&tt.stats)
			require.Equal(t, tt.want, got.Posture)
		})
	}
}

func TestStatusTrend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stats domain.PlayerStats
		want  string
	}{
		{name: "rising", stats: domain.PlayerStats{Mentions: 1, SentimentScore: 0.11}, want: domain.TrendRising},
		{name: "falling", stats: domain.PlayerStats{Mentions: 1, SentimentScore: -0.11}, want: domain.TrendFalling},
		{name: "stable at positive threshold", stats: domain.PlayerStats{Mentions: 1, SentimentScore: 0.1}, want: domain.TrendStable},
		{name: "stable at negative threshold", stats: domain.PlayerStats{Mentions: 1, SentimentScore: -0.1}, want: domain.TrendStable},
		{name: "zero mentions stable", stats: domain.PlayerStats{SentimentScore: 0.9}, want: domain.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statusFor(&tt.stats)
			require.Equal(t, tt.want, got.Trend)
		})
	}
}

func TestGenerateBattlefieldStatus(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(trackedPlayers(), defaultRules())
	metrics := metricsWith(map[string]*domain.PlayerStats{
		"anura": {Mentions: 4, Negative: 3, Positive: 1, MediaShare: 80.0, SentimentScore: -0.5, CrisisAssociated: 2},
	})

	rep := gen.Generate(metrics)

	require.Equal(t, runTime, rep.Timestamp)
	require.Len(t, rep.BattlefieldStatus, 4)
	require.NotNil(t, rep.ActiveConflicts)
	require.Empty(t, rep.ActiveConflicts)

	anura := rep.BattlefieldStatus["anura"]
	require.Equal(t, 80.0, anura.MediaPresence)
	require.Equal(t, -0.5, anura.PublicSentiment)
	require.Equal(t, domain.PostureAttacking, anura.Posture)
	require.Equal(t, domain.TrendFalling, anura.Trend)
	require.Equal(t, 2, anura.CrisisExposure)

	// Untouched players report the zero defaults.
	sajith := rep.BattlefieldStatus["sajith"]
	require.Equal(t, domain.PostureNeutral, sajith.Posture)
	require.Equal(t, domain.TrendStable, sajith.Trend)
}

func TestGeneratePlayerPredictions(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(trackedPlayers(), defaultRules())

	falling := gen.Generate(metricsWith(map[string]*domain.PlayerStats{
		"anura":  {Mentions: 2, Negative: 2, SentimentScore: -1},
		"dilith": {Mentions: 2, Positive: 2, SentimentScore: 1},
	}))

	anura, ok := falling.Predictions["anura"].(domain.PlayerPrediction)
	require.True(t, ok)
	require.Equal(t, "Emergency populist measure (fuel subsidy/teacher wage hike)", anura.Move)
	require.Equal(t, 0.82, anura.Confidence)
	require.Equal(t, "24-48 hours", anura.Timing)

	dilith, ok := falling.Predictions["dilith"].(domain.PlayerPrediction)
	require.True(t, ok)
	require.Equal(t, "Escalate attacks, formalize opposition coalition", dilith.Move)
	require.Equal(t, 0.79, dilith.Confidence)

	steady := gen.Generate(metricsWith(nil))

	anura, ok = steady.Predictions["anura"].(domain.PlayerPrediction)
	require.True(t, ok)
	require.Equal(t, "Continue IMF path, ignore opposition", anura.Move)
	require.Equal(t, 0.75, anura.Confidence)
	require.Equal(t, "Ongoing", anura.Timing)

	dilith, ok = steady.Predictions["dilith"].(domain.PlayerPrediction)
	require.True(t, ok)
	require.Equal(t, "Consolidate gains, prepare for Budget battle", dilith.Move)
	require.Equal(t, 0.71, dilith.Confidence)
}

func TestGenerateCoalitionPrediction(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(trackedPlayers(), defaultRules())

	// Opposition holds 7 of 10 mentions: over the 60% threshold.
	over := gen.Generate(metricsWith(map[string]*domain.PlayerStats{
		"anura":  {Mentions: 3, Neutral: 3},
		"dilith": {Mentions: 3, Neutral: 3},
		"sajith": {Mentions: 2, Neutral: 2},
		"namal":  {Mentions: 2, Neutral: 2},
	}))

	coalition, ok := over.Predictions["coalition"].(domain.CoalitionPrediction)
	require.True(t, ok)
	require.Equal(t, 0.73, coalition.FormationProbability)
	require.Equal(t, "2-4 weeks", coalition.Timeline)
	require.Equal(t, "dilith", coalition.Leader)

	// Opposition holds half of the mentions: under the threshold.
	under := gen.Generate(metricsWith(map[string]*domain.PlayerStats{
		"anura":  {Mentions: 3, Neutral: 3},
		"dilith": {Mentions: 3, Neutral: 3},
	}))

	coalition, ok = under.Predictions["coalition"].(domain.CoalitionPrediction)
	require.True(t, ok)
	require.Equal(t, 0.45, coalition.FormationProbability)
	require.Equal(t, "Uncertain", coalition.Timeline)
	require.Equal(t, "none", coalition.Leader)

	// Empty run: zero combined mentions never clears the threshold.
	empty := gen.Generate(metricsWith(nil))
	coalition, ok = empty.Predictions["coalition"].(domain.CoalitionPrediction)
	require.True(t, ok)
	require.Equal(t, 0.45, coalition.FormationProbability)
}
