package analysis

import (
	"math"
	"strings"

	"github.com/yoshi-675/sl-political-war-tracker/internal/domain"
)

// Classifier scores headline text against three fixed keyword lists. Each
// list entry contributes at most one hit per text, and the lists keep their
// two-script duplication exactly as configured: the literal scores are part
// of the output contract, so no stemming or deduplication happens here.
type Classifier struct {
	positive []string
	negative []string
	crisis   []string
}

// NewClassifier lowercases the injected keyword lists once up front.
func NewClassifier(positive, negative, crisis []string) *Classifier {
	return &Classifier{
		positive: lowerAll(positive),
		negative: lowerAll(negative),
		crisis:   lowerAll(crisis),
	}
}

// Classify derives a sentiment label and score from keyword containment.
//
//	pos > neg  -> positive, score 0.5 + min(pos*0.1, 0.5)
//	neg > pos  -> negative, score 0.5 - min(neg*0.1, 0.5)
//	otherwise  -> neutral, score 0.5
//
// The score is rounded to two decimals and always stays within [0, 1].
// Crisis keyword hits are counted separately and never feed the score.
func (c *Classifier) Classify(text string) domain.SentimentResult {
	lower := strings.ToLower(text)

	pos := countHits(lower, c.positive)
	neg := countHits(lower, c.negative)
	crisis := countHits(lower, c.crisis)

	label := domain.SentimentNeutral
	score := 0.5
	switch {
	case pos > neg:
		label = domain.SentimentPositive
		score = 0.5 + math.Min(float64(pos)*0.1, 0.5)
	case neg > pos:
		label = domain.SentimentNegative
		score = 0.5 - math.Min(float64(neg)*0.1, 0.5)
	}

	return domain.SentimentResult{
		Label:       label,
		Score:       round2(score),
		CrisisCount: crisis,
	}
}

func countHits(lower string, keywords []string) int {
	hits := 0
	for _, keyword := range keywords {
		if keyword != "" && strings.Contains(lower, keyword) {
			hits++
		}
	}
	return hits
}

func lowerAll(keywords []string) []string {
	lowered := make([]string, len(keywords))
	for i, keyword := range keywords {
		lowered[i] = strings.ToLower(keyword)
	}
	return lowered
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
