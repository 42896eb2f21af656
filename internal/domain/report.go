package domain

import "time"

// Posture and trend values derived by the report generator.
const (
	PostureAttacking = "attacking"
	PostureDefending = "defending"
	PostureNeutral   = "neutral"

	TrendRising  = "rising"
	TrendFalling = "falling"
	TrendStable  = "stable"
)

// PlayerStatus is the qualitative battlefield view over one player's
// finalized stats.
type PlayerStatus struct {
	MediaPresence   float64 `json:"media_presence"`
	PublicSentiment float64 `json:"public_sentiment"`
	Posture         string  `json:"posture"`
	Trend           string  `json:"trend"`
	CrisisExposure  int     `json:"crisis_exposure"`
}

// PlayerPrediction is a rule-table move forecast for a named player.
type PlayerPrediction struct {
	Move       string  `json:"move"`
	Confidence float64 `json:"confidence"`
	Timing     string  `json:"timing"`
}

// CoalitionPrediction forecasts opposition coalition formation.
type CoalitionPrediction struct {
	FormationProbability float64 `json:"formation_probability"`
	Timeline             string  `json:"timeline"`
	Leader               string  `json:"leader"`
}

// WarReport is the derived, read-only view produced once per run.
// Predictions values are PlayerPrediction or CoalitionPrediction.
type WarReport struct {
	Timestamp         time.Time               `json:"timestamp"`
	BattlefieldStatus map[string]PlayerStatus `json:"battlefield_status"`
	Predictions       map[string]any          `json:"predictions"`
	ActiveConflicts   []string                `json:"active_conflicts"`
}

// Snapshot is the single structured document persisted per run. Field names
// and nesting are a compatibility contract with downstream consumers.
type Snapshot struct {
	RawMetrics     Metrics   `json:"raw_metrics"`
	WarReport      WarReport `json:"war_report"`
	ArticlesSample []Article `json:"articles_sample"`
	GeneratedAt    time.Time `json:"generated_at"`
}
