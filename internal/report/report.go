package report

import (
	"github.com/yoshi-675/sl-political-war-tracker/internal/domain"
)

// Thresholds separating postures and trends.
const (
	postureRatio   = 0.4
	trendThreshold = 0.1
)

// MoveRule forecasts a named player's next move from their trend value.
type MoveRule struct {
	PlayerID  string
	WhenTrend string
	Then      domain.PlayerPrediction
	Else      domain.PlayerPrediction
}

// CoalitionRule thresholds the members' combined mention share against the
// run total.
type CoalitionRule struct {
	Members        []string
	ShareThreshold float64
	Then           domain.CoalitionPrediction
	Else           domain.CoalitionPrediction
}

// Rules is the fixed prediction rule table; the literal outcomes are
// configuration, not derived values.
type Rules struct {
	Moves     []MoveRule
	Coalition CoalitionRule
}

// Generator derives the qualitative war report from finalized metrics.
type Generator struct {
	players []domain.Player
	rules   Rules
}

// NewGenerator keeps the configured player order for deterministic output.
func NewGenerator(players []domain.Player, rules Rules) *Generator {
	return &Generator{players: players, rules: rules}
}

// Generate derives per-player battlefield status and the rule-table
// predictions. Metrics must already be finalized.
func (g *Generator) Generate(metrics domain.Metrics) domain.WarReport {
	rep := domain.WarReport{
		Timestamp:         metrics.Timestamp,
		BattlefieldStatus: make(map[string]domain.PlayerStatus, len(g.players)),
		Predictions:       make(map[string]any, len(g.rules.Moves)+1),
		ActiveConflicts:   []string{},
	}

	for _, player := range g.players {
		stats, ok := metrics.Players[player.ID]
		if !ok {
			continue
		}
		rep.BattlefieldStatus[player.ID] = statusFor(stats)
	}

	for _, rule := range g.rules.Moves {
		status, ok := rep.BattlefieldStatus[rule.PlayerID]
		if !ok {
			continue
		}
		if status.Trend == rule.WhenTrend {
			rep.Predictions[rule.PlayerID] = rule.Then
		} else {
			rep.Predictions[rule.PlayerID] = rule.Else
		}
	}

	if len(g.rules.Coalition.Members) > 0 {
		rep.Predictions["coalition"] = g.coalition(metrics)
	}

	return rep
}

// statusFor maps one player's finalized stats to posture and trend. Attack
// is checked before defense: when both ratios clear the bar, attacking wins.
// Zero-mention players stay neutral and stable.
func statusFor(stats *domain.PlayerStats) domain.PlayerStatus {
	posture := domain.PostureNeutral
	trend := domain.TrendStable

	if stats.Mentions > 0 {
		attackRatio := float64(stats.Negative) / float64(stats.Mentions)
		defenseRatio := float64(stats.Positive) / float64(stats.Mentions)

		switch {
		case attackRatio > postureRatio:
			posture = domain.PostureAttacking
		case defenseRatio > postureRatio:
			posture = domain.PostureDefending
		}

		switch {
		case stats.SentimentScore > trendThreshold:
			trend = domain.TrendRising
		case stats.SentimentScore < -trendThreshold:
			trend = domain.TrendFalling
		}
	}

	return domain.PlayerStatus{
		MediaPresence:   stats.MediaShare,
		PublicSentiment: stats.SentimentScore,
		Posture:         posture,
		Trend:           trend,
		CrisisExposure:  stats.CrisisAssociated,
	}
}

func (g *Generator) coalition(metrics domain.Metrics) domain.CoalitionPrediction {
	combined := 0
	for _, id := range g.rules.Coalition.Members {
		if stats, ok := metrics.Players[id]; ok {
			combined += stats.Mentions
		}
	}

	if float64(combined) > float64(metrics.TotalMentions)*g.rules.Coalition.ShareThreshold {
		return g.rules.Coalition.Then
	}
	return g.rules.Coalition.Else
}
