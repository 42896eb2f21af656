package domain

import "time"

// Headline records one scored mention inside a player's history, in
// processing order.
type Headline struct {
	Title     string    `json:"title"`
	Sentiment Sentiment `json:"sentiment"`
	Source    string    `json:"source"`
}

// PlayerStats is the per-player accumulator for a single run. The counters
// are mutated once per matching article; MediaShare and SentimentScore are
// derived during finalization and undefined before it.
//
// Invariant: Mentions == Positive + Negative + Neutral at all times.
type PlayerStats struct {
	Mentions         int        `json:"mentions"`
	Positive         int        `json:"positive"`
	Negative         int        `json:"negative"`
	Neutral          int        `json:"neutral"`
	CrisisAssociated int        `json:"crisis_associated"`
	Headlines        []Headline `json:"headlines"`
	MediaShare       float64    `json:"media_share"`
	SentimentScore   float64    `json:"sentiment_score"`
}

// Metrics is the finalized run-level view. TotalMentions may exceed
// TotalArticles because one article can mention several players.
type Metrics struct {
	Players        map[string]*PlayerStats `json:"players"`
	TotalArticles  int                     `json:"total_articles"`
	TotalMentions  int                     `json:"total_mentions"`
	WarIntensity   float64                 `json:"war_intensity"`
	DominantPlayer string                  `json:"dominant_player"`
	Timestamp      time.Time               `json:"timestamp"`
}
