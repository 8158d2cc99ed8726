package render

import (
	"image/color"

	"git.lost.host/meutraa/otoge/internal/bga"
)

// Virtual coordinate space shared by instance producers and renderers.
// The origin is the screen center, y grows upward.
const (
	// VisibleHeight is the height of the play area in virtual pixels.
	VisibleHeight = 600.0
	// PanelGap separates the lanes from the background animation panel.
	PanelGap = 16.0
	// LaneCount is the number of playable lanes.
	LaneCount = 8
	// LaneWidth is one lane in virtual pixels.
	LaneWidth = 60.0
	// LaneGap separates adjacent lanes.
	LaneGap = 8.0
	// NoteHeight is the height of a note rectangle.
	NoteHeight = 12.0
)

// TotalWidth is the width of all lanes and the gaps between them.
func TotalWidth() float64 {
	return LaneCount*LaneWidth + (LaneCount-1)*LaneGap
}

// LaneX is the virtual x coordinate of the center of lane idx.
func LaneX(idx int) float64 {
	left := -TotalWidth()/2 + LaneWidth/2
	offset := (PanelGap + VisibleHeight) / 2
	return left + float64(idx)*(LaneWidth+LaneGap) - offset
}

// Instance is one fixed-size colored rectangle, positioned by center.
type Instance struct {
	X, Y          float64
	Width, Height float64
	Color         color.RGBA
}

// Msg is a message consumed by a renderer.
type Msg interface {
	visualMsg()
}

// Frame replaces the instance list drawn each refresh.
type Frame struct {
	Instances []Instance
}

// BgaChange switches the image shown on a background animation layer.
type BgaChange struct {
	Layer bga.Layer
	Path  string
}

// BgaPoorTrigger briefly shows the poor layer.
type BgaPoorTrigger struct{}

// VideoPlay starts video playback on a background animation layer.
type VideoPlay struct {
	Layer bga.Layer
	Path  string
	Loop  bool
}

// RequestFileOpen asks the windowing side to open a chart picker.
type RequestFileOpen struct{}

func (Frame) visualMsg()           {}
func (BgaChange) visualMsg()       {}
func (BgaPoorTrigger) visualMsg()  {}
func (VideoPlay) visualMsg()       {}
func (RequestFileOpen) visualMsg() {}

// Renderer consumes visual messages and presents frames until the
// message channel is closed.
type Renderer interface {
	Init() error
	Deinit() error
	Run(msgs <-chan Msg)
}
