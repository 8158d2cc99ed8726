package game

import (
	"git.lost.host/meutraa/otoge/internal/render"
	"git.lost.host/meutraa/otoge/internal/theme"
)

const (
	lineHeight     = 4.0
	gaugeWidth     = 12.0
	pressedHeight  = 80.0
	pipSize        = 8.0
	pipGap         = 2.0
	maxComboPips   = 50
	sidePanelSpace = 10.0
)

// BaseInstances draws the static play field: lane backgrounds, the
// judgment line, pressed-lane overlays and the gauge.
func BaseInstances(st *State, th theme.Theme) []render.Instance {
	out := make([]render.Instance, 0, 2*render.LaneCount+4)
	for i := 0; i < render.LaneCount; i++ {
		out = append(out, render.Instance{
			X:      render.LaneX(i),
			Y:      0,
			Width:  render.LaneWidth,
			Height: render.VisibleHeight,
			Color:  th.LaneBackground(),
		})
	}
	out = append(out, render.Instance{
		X:      fieldCenterX(),
		Y:      -render.VisibleHeight / 2,
		Width:  render.TotalWidth(),
		Height: lineHeight,
		Color:  th.JudgmentLine(),
	})
	for i := 0; i < render.LaneCount; i++ {
		if !st.Pressed[i] {
			continue
		}
		out = append(out, render.Instance{
			X:      render.LaneX(i),
			Y:      -render.VisibleHeight/2 + pressedHeight/2,
			Width:  render.LaneWidth,
			Height: pressedHeight,
			Color:  th.PressedOverlay(),
		})
	}
	out = append(out, gaugeInstances(st, th)...)
	out = append(out, comboInstances(st, th)...)
	return out
}

// BuildInstances draws the full play field for one frame, including
// the notes currently scrolling through the window.
func BuildInstances(p *Processor, st *State, th theme.Theme) []render.Instance {
	out := BaseInstances(st, th)
	if nil == p {
		return out
	}
	for _, v := range p.VisibleEvents() {
		if Player1 != v.Event.Side {
			continue
		}
		lane, ok := KeyToLane(v.Event.Key)
		if !ok {
			continue
		}
		out = append(out, render.Instance{
			X:      render.LaneX(lane),
			Y:      -render.VisibleHeight/2 + v.Ratio*render.VisibleHeight,
			Width:  render.LaneWidth,
			Height: render.NoteHeight,
			Color:  th.LaneColor(lane),
		})
	}
	return out
}

func fieldCenterX() float64 {
	return (render.LaneX(0) + render.LaneX(render.LaneCount-1)) / 2
}

func gaugeInstances(st *State, th theme.Theme) []render.Instance {
	x := render.LaneX(render.LaneCount-1) + render.LaneWidth/2 + render.LaneGap + sidePanelSpace
	out := []render.Instance{{
		X:      x,
		Y:      0,
		Width:  gaugeWidth,
		Height: render.VisibleHeight,
		Color:  th.GaugeBar(),
	}}
	fill := st.Gauge * render.VisibleHeight
	if fill > 0 {
		out = append(out, render.Instance{
			X:      x,
			Y:      -render.VisibleHeight/2 + fill/2,
			Width:  gaugeWidth,
			Height: fill,
			Color:  th.GaugeFill(),
		})
	}
	return out
}

// comboInstances stacks one pip per combo along the left edge,
// capped so long combos do not overflow the field.
func comboInstances(st *State, th theme.Theme) []render.Instance {
	pips := int(st.Combo)
	if pips > maxComboPips {
		pips = maxComboPips
	}
	if 0 == pips {
		return nil
	}
	x := render.LaneX(0) - render.LaneWidth/2 - render.LaneGap - sidePanelSpace
	out := make([]render.Instance, 0, pips)
	for i := 0; i < pips; i++ {
		out = append(out, render.Instance{
			X:      x,
			Y:      -render.VisibleHeight/2 + float64(i)*(pipSize+pipGap) + pipSize/2,
			Width:  pipSize,
			Height: pipSize,
			Color:  th.Combo(),
		})
	}
	return out
}
