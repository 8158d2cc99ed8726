package game

import "time"

type Side uint8

const (
	Player1 Side = iota
	Player2
)

// Key is a chart column. 0 is the scratch, 1 through 7 the keys.
type Key uint8

const KeyScratch Key = 0

type SoundID string
type ImageID string

// ChartLayer is a chart-side BGA layer reference.
type ChartLayer uint8

const (
	ChartLayerBase ChartLayer = iota
	ChartLayerOverlay
	ChartLayerOverlay2
	ChartLayerPoor
)

type Note struct {
	Side  Side
	Key   Key
	Time  time.Duration
	Sound SoundID
}

// BGM is a background keysound played automatically at its time.
type BGM struct {
	Time  time.Duration
	Sound SoundID
}

// BGAChange switches the image shown on a BGA layer at its time.
type BGAChange struct {
	Time  time.Duration
	Layer ChartLayer
	Image ImageID
}

type Chart struct {
	Title  string
	Artist string
	Notes  []Note
	BGMs   []BGM
	BGAs   []BGAChange
	// Sounds and Images map referenced ids to paths relative to the
	// chart directory.
	Sounds map[SoundID]string
	Images map[ImageID]string
}

// KeyToLane maps a chart column for the given side to a lane index.
// The scratch occupies lane 0, keys 1 through 7 the lanes after it.
func KeyToLane(k Key) (int, bool) {
	if k > 7 {
		return 0, false
	}
	return int(k), true
}
