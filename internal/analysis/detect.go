package analysis

import (
	"strings"

	"github.com/yoshi-675/sl-political-war-tracker/internal/domain"
)

// Detector maps headline text to the set of tracked players it references.
type Detector struct {
	players []domain.Player
}

// NewDetector builds a detector over the configured player table.
func NewDetector(players []domain.Player) *Detector {
	return &Detector{players: players}
}

// Detect reports, per player, whether any configured alias occurs as a
// case-insensitive substring of text. There is no word-boundary check and
// repeated occurrences carry no extra weight; the result is a boolean per
// player. Empty text yields an all-false mapping.
func (d *Detector) Detect(text string) map[string]bool {
	lower := strings.ToLower(text)

	mentions := make(map[string]bool, len(d.players))
	for _, player := range d.players {
		matched := false
		for _, name := range player.Names {
			if name != "" && strings.Contains(lower, strings.ToLower(name)) {
				matched = true
				break
			}
		}
		mentions[player.ID] = matched
	}

	return mentions
}
