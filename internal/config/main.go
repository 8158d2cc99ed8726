package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"git.lost.host/meutraa/otoge/internal/game"
)

var (
	Directory = kingpin.
			Arg("directory", "chart directory to play").
			String()

	rate = kingpin.
		Flag("rate", "playback speed multiplier").
		Default("1.0").
		Float64()

	delay = kingpin.
		Flag("delay", "lead-in before playback starts").
		Default("0s").
		Duration()

	keys = kingpin.
		Flag("keys", "keys for the 8 lanes, scratch first").
		Default("azsxdcfv").
		String()

	judge = kingpin.
		Flag("judge", "judgement preset").
		Default("normal").
		String()

	Workers = kingpin.
		Flag("workers", "asset preload workers, 0 for automatic").
		Default("0").
		Int()

	Scores = kingpin.
		Flag("scores", "score database file").
		Default("scores.db").
		String()
)

var judgePresets = map[string]game.JudgeParams{
	"easy": {
		Travel:  700 * time.Millisecond,
		Windows: [4]time.Duration{24 * time.Millisecond, 48 * time.Millisecond, 100 * time.Millisecond, 150 * time.Millisecond},
	},
	"normal": {
		Travel:  600 * time.Millisecond,
		Windows: [4]time.Duration{16 * time.Millisecond, 36 * time.Millisecond, 80 * time.Millisecond, 120 * time.Millisecond},
	},
	"strict": {
		Travel:  500 * time.Millisecond,
		Windows: [4]time.Duration{8 * time.Millisecond, 24 * time.Millisecond, 60 * time.Millisecond, 100 * time.Millisecond},
	},
}

// Parse reads the command line. Not run from init so tests keep
// their own flags.
func Parse() {
	kingpin.Parse()
}

func Rate() float64 { return *rate }

func Delay() time.Duration { return *delay }

func Keys() []rune { return []rune(*keys) }

// Judge resolves the selected judgement preset.
func Judge() (game.JudgeParams, error) {
	p, ok := judgePresets[*judge]
	if !ok {
		names := make([]string, 0, len(judgePresets))
		for n := range judgePresets {
			names = append(names, n)
		}
		sort.Strings(names)
		return game.JudgeParams{}, fmt.Errorf("unknown judgement preset %q, have %v", *judge, strings.Join(names, ", "))
	}
	return p, nil
}
