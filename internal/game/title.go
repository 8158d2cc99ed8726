package game

import (
	"time"

	"git.lost.host/meutraa/otoge/internal/input"
	"git.lost.host/meutraa/otoge/internal/page"
	"git.lost.host/meutraa/otoge/internal/render"
	"git.lost.host/meutraa/otoge/internal/theme"
)

// TitlePage waits for a chart to be picked. Enter asks the
// presentation side to open a file picker, escape quits.
type TitlePage struct {
	page.Base
	th   theme.Theme
	exit bool
}

func NewTitlePage(th theme.Theme) *TitlePage {
	return &TitlePage{th: th}
}

func (t *TitlePage) ID() page.ID { return page.Title }

func (t *TitlePage) OnInput(msg input.Msg, ctx *page.Context) (bool, error) {
	m, ok := msg.(input.SystemKey)
	if !ok {
		return false, nil
	}
	switch m.Key {
	case input.KeyEnter:
		ctx.SendVisual(render.RequestFileOpen{})
		return true, nil
	case input.KeyEscape:
		t.exit = true
		return true, nil
	}
	return false, nil
}

func (t *TitlePage) OnUpdate(dt time.Duration, ctx *page.Context) (page.Transition, error) {
	if t.exit {
		return page.Exit(), nil
	}
	return page.Stay(), nil
}

func (t *TitlePage) OnRender(ctx *page.Context) []render.Instance {
	return logoInstances(t.th)
}

const logoCell = 24.0

// Glyph rows for the logotype, most significant bit leftmost.
var logoGlyphs = map[rune][5]uint8{
	'O': {0b111, 0b101, 0b101, 0b101, 0b111},
	'T': {0b111, 0b010, 0b010, 0b010, 0b010},
	'G': {0b111, 0b100, 0b101, 0b101, 0b111},
	'E': {0b111, 0b100, 0b111, 0b100, 0b111},
}

func logoInstances(th theme.Theme) []render.Instance {
	text := "OTOGE"
	glyphWidth := 4.0 * logoCell
	width := float64(len(text)) * glyphWidth
	left := -width / 2
	var out []render.Instance
	for i, r := range text {
		glyph, ok := logoGlyphs[r]
		if !ok {
			continue
		}
		originX := left + float64(i)*glyphWidth
		for row := 0; row < 5; row++ {
			for col := 0; col < 3; col++ {
				if 0 == glyph[row]>>(2-col)&1 {
					continue
				}
				out = append(out, render.Instance{
					X:      originX + float64(col)*logoCell + logoCell/2,
					Y:      float64(2-row)*logoCell + logoCell/2,
					Width:  logoCell,
					Height: logoCell,
					Color:  th.JudgmentLine(),
				})
			}
		}
	}
	return out
}

// TitleBuilder constructs fresh title pages.
type TitleBuilder struct {
	Theme theme.Theme
}

func (b *TitleBuilder) ID() page.ID { return page.Title }

func (b *TitleBuilder) Build() (page.Page, error) {
	return NewTitlePage(b.Theme), nil
}
