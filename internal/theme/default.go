package theme

import "image/color"

type DefaultTheme struct {
}

// LaneColor maps a lane index to a note color. Lane 0 is the
// scratch, odd keys are white, even keys are blue.
func (t *DefaultTheme) LaneColor(lane int) color.RGBA {
	if 0 == lane {
		return scratchColor
	}
	if 1 == lane%2 {
		return oddKeyColor
	}
	return evenKeyColor
}

func (t *DefaultTheme) LaneBackground() color.RGBA { return laneBackground }
func (t *DefaultTheme) JudgmentLine() color.RGBA   { return judgmentLine }
func (t *DefaultTheme) PressedOverlay() color.RGBA { return pressedOverlay }
func (t *DefaultTheme) GaugeBar() color.RGBA       { return gaugeBar }
func (t *DefaultTheme) GaugeFill() color.RGBA      { return gaugeFill }
func (t *DefaultTheme) Combo() color.RGBA          { return comboColor }

var (
	scratchColor   = color.RGBA{236, 30, 0, 255}
	oddKeyColor    = color.RGBA{236, 236, 236, 255}
	evenKeyColor   = color.RGBA{0, 118, 236, 255}
	laneBackground = color.RGBA{38, 38, 46, 255}
	judgmentLine   = color.RGBA{230, 230, 230, 255}
	pressedOverlay = color.RGBA{255, 255, 255, 64}
	gaugeBar       = color.RGBA{77, 77, 89, 255}
	gaugeFill      = color.RGBA{51, 204, 102, 255}
	comboColor     = color.RGBA{236, 195, 0, 255}
)
