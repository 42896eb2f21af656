package domain

import "time"

// Article is a single headline extracted from a news source. JSON tags
// match the persisted snapshot layout.
type Article struct {
	Title     string    `json:"title"`
	Source    string    `json:"source"`
	URL       string    `json:"url"`
	FetchedAt time.Time `json:"timestamp"`
}

// Player is a tracked public figure built from static configuration and
// never mutated afterwards. Names are the case-insensitive substrings that
// count as a mention.
type Player struct {
	ID    string
	Names []string
	Party string
	Role  string
}

// Sentiment labels the tone of a single headline.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// SentimentResult is derived purely from a headline's text. The crisis
// count is raw and unbounded; it never feeds the score.
type SentimentResult struct {
	Label       Sentiment `json:"sentiment"`
	Score       float64   `json:"score"`
	CrisisCount int       `json:"crisis_indicators"`
}
