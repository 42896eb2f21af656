package usecase

import (
	"fmt"
	"strings"

	"github.com/yoshi-675/sl-political-war-tracker/internal/domain"
)

const moveWidth = 50

// BuildSummary renders the human-readable console report. The summary is
// non-authoritative; the snapshot document is the compatibility surface.
func BuildSummary(metrics domain.Metrics, rep domain.WarReport, players []domain.Player) string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)

	b.WriteString(rule + "\n")
	b.WriteString("POLITICAL WAR REPORT\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Articles: %d | Mentions: %d\n", metrics.TotalArticles, metrics.TotalMentions)
	fmt.Fprintf(&b, "War Intensity: %.1f/10\n", metrics.WarIntensity)
	fmt.Fprintf(&b, "Dominant: %s\n", strings.ToUpper(metrics.DominantPlayer))

	b.WriteString("\nPlayer Status:\n")
	for _, player := range players {
		status, ok := rep.BattlefieldStatus[player.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %s: %.1f%% media, %+.2f sentiment, %s\n",
			strings.ToUpper(player.ID), status.MediaPresence, status.PublicSentiment, status.Trend)
	}

	b.WriteString("\nPredictions:\n")
	for _, player := range players {
		pred, ok := rep.Predictions[player.ID].(domain.PlayerPrediction)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %s: %s (%.0f%%)\n",
			strings.ToUpper(player.ID), truncate(pred.Move, moveWidth), pred.Confidence*100)
	}
	if coalition, ok := rep.Predictions["coalition"].(domain.CoalitionPrediction); ok {
		fmt.Fprintf(&b, "  COALITION: probability %.2f, %s, leader %s\n",
			coalition.FormationProbability, coalition.Timeline, coalition.Leader)
	}

	return b.String()
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
