package score

import (
	"git.lost.host/meutraa/otoge/internal/game"
)

type Scorer interface {
	Init(path string) error
	Deinit()

	// Save the judged hits of this play
	Save(chart *game.Chart, rate float64, hits []game.Hit) error

	// Load up previous plays of the chart
	Load(chart *game.Chart) []History

	Summarize(history *History) Summary
}

type History struct {
	Sum  string
	Hits []game.Hit
	Rate float64
}

type Summary struct {
	Grades   [5]uint32
	MaxCombo uint32
	Gauge    float64
}
