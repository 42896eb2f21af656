package aggregate

import (
	"math"
	"time"

	"github.com/yoshi-675/sl-political-war-tracker/internal/domain"
)

// Tally accumulates per-player statistics over a single run. Player order
// follows the configuration order, which also decides dominant-player ties.
// Tally is confined to a single writer; the pipeline feeds it one article
// at a time after that article's extraction completes.
type Tally struct {
	order    []string
	stats    map[string]*domain.PlayerStats
	articles int
}

// NewTally seeds zeroed stats for every tracked player.
func NewTally(players []domain.Player) *Tally {
	t := &Tally{
		order: make([]string, 0, len(players)),
		stats: make(map[string]*domain.PlayerStats, len(players)),
	}
	for _, player := range players {
		t.order = append(t.order, player.ID)
		t.stats[player.ID] = &domain.PlayerStats{Headlines: []domain.Headline{}}
	}
	return t
}

// Add folds one scored article into every mentioned player's counters.
// This is the fan-out step: a headline matching several players contributes
// fully and independently to each of them, not split or weighted. Every
// processed article counts toward the run's article total, mentioned or not.
func (t *Tally) Add(article domain.Article, sentiment domain.SentimentResult, mentions map[string]bool) {
	t.articles++

	for _, id := range t.order {
		if !mentions[id] {
			continue
		}

		stats := t.stats[id]
		stats.Mentions++
		stats.Headlines = append(stats.Headlines, domain.Headline{
			Title:     article.Title,
			Sentiment: sentiment.Label,
			Source:    article.Source,
		})

		switch sentiment.Label {
		case domain.SentimentPositive:
			stats.Positive++
		case domain.SentimentNegative:
			stats.Negative++
		default:
			stats.Neutral++
		}

		stats.CrisisAssociated += sentiment.CrisisCount
	}
}

// Finalize derives media shares, sentiment scores, and the run-level
// metrics. It must run after all articles are added; shares and scores are
// undefined before then. Derivation is a pure function of the raw counters,
// so calling Finalize again without further Add calls yields identical
// output.
func (t *Tally) Finalize(now time.Time) domain.Metrics {
	totalMentions := 0
	crisisSum := 0
	for _, id := range t.order {
		totalMentions += t.stats[id].Mentions
		crisisSum += t.stats[id].CrisisAssociated
	}

	for _, id := range t.order {
		stats := t.stats[id]
		if stats.Mentions > 0 {
			stats.MediaShare = round1(float64(stats.Mentions) / float64(max(1, totalMentions)) * 100)
			stats.SentimentScore = round2(float64(stats.Positive-stats.Negative) / float64(stats.Mentions))
		} else {
			stats.MediaShare = 0
			stats.SentimentScore = 0
		}
	}

	dominant := "none"
	if totalMentions > 0 {
		best := -1
		for _, id := range t.order {
			if t.stats[id].Mentions > best {
				best = t.stats[id].Mentions
				dominant = id
			}
		}
	}

	return domain.Metrics{
		Players:        t.stats,
		TotalArticles:  t.articles,
		TotalMentions:  totalMentions,
		WarIntensity:   math.Min(10, float64(crisisSum)/float64(max(1, t.articles))*5),
		DominantPlayer: dominant,
		Timestamp:      now,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
