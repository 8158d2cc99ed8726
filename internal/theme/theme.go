package theme

import "image/color"

type Theme interface {
	LaneColor(lane int) color.RGBA
	LaneBackground() color.RGBA
	JudgmentLine() color.RGBA
	PressedOverlay() color.RGBA
	GaugeBar() color.RGBA
	GaugeFill() color.RGBA
	Combo() color.RGBA
}
