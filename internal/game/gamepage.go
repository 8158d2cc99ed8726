package game

import (
	"time"

	"git.lost.host/meutraa/otoge/internal/audio"
	"git.lost.host/meutraa/otoge/internal/bga"
	"git.lost.host/meutraa/otoge/internal/input"
	"git.lost.host/meutraa/otoge/internal/page"
	"git.lost.host/meutraa/otoge/internal/render"
	"git.lost.host/meutraa/otoge/internal/theme"
)

// ImageAsset is a resolved BGA reference.
type ImageAsset struct {
	Path  string
	Video bool
}

// ResultSink receives the judged hits of a finished play.
type ResultSink interface {
	Save(chart *Chart, rate float64, hits []Hit) error
}

// GameConfig carries everything a play session needs.
type GameConfig struct {
	Chart   *Chart
	Layout  KeyLayout
	Judge   JudgeParams
	Rate    float64
	Delay   time.Duration
	Cache   *bga.Cache
	Sounds  map[SoundID]string
	Images  map[ImageID]ImageAsset
	Ready   <-chan audio.Event
	Workers int
	Theme   theme.Theme
	Results ResultSink
}

// GamePage runs one play of a chart.
type GamePage struct {
	page.Base
	cfg       GameConfig
	processor *Processor
	state     State
	consumed  map[uint64]bool
	hits      []Hit
	awaiting  bool
	started   bool
	leave     bool
}

func NewGamePage(cfg GameConfig) *GamePage {
	g := &GamePage{
		cfg:      cfg,
		state:    NewState(),
		consumed: map[uint64]bool{},
	}
	if nil != cfg.Chart {
		g.processor = NewProcessor(cfg.Chart, cfg.Layout, cfg.Judge.Travel, cfg.Rate)
	}
	return g
}

func (g *GamePage) ID() page.ID { return page.Game }

// OnInit warms the decode caches before play begins. The audio
// preload runs on its own thread, so only its completion signal is
// awaited, on enter.
func (g *GamePage) OnInit(ctx *page.Context) error {
	if nil == g.processor {
		return nil
	}
	if nil != g.cfg.Cache {
		var stills []string
		for _, a := range g.cfg.Images {
			if !a.Video {
				stills = append(stills, a.Path)
			}
		}
		bga.Preload(g.cfg.Cache, stills, g.cfg.Workers)
	}
	var sounds []string
	for _, p := range g.cfg.Sounds {
		sounds = append(sounds, p)
	}
	ctx.AudioTx <- audio.PreloadAll{Files: sounds}
	g.awaiting = true
	return nil
}

func (g *GamePage) OnEnter(ctx *page.Context) error {
	if g.awaiting && nil != g.cfg.Ready {
		<-g.cfg.Ready
		g.awaiting = false
	}
	if nil != g.processor && !g.started {
		g.processor.StartPlay(time.Now().Add(g.cfg.Delay))
		g.started = true
	}
	return nil
}

func (g *GamePage) OnLeave(ctx *page.Context) error {
	if nil != g.cfg.Results && 0 != len(g.hits) {
		if err := g.cfg.Results.Save(g.cfg.Chart, g.cfg.Rate, g.hits); nil != err {
			return err
		}
		g.hits = nil
	}
	return nil
}

func (g *GamePage) OnInput(msg input.Msg, ctx *page.Context) (bool, error) {
	switch m := msg.(type) {
	case input.KeyDown:
		if m.Lane < 0 || m.Lane >= render.LaneCount {
			return false, nil
		}
		g.state.Pressed[m.Lane] = true
		g.judge(m.Lane, ctx)
		return true, nil
	case input.KeyUp:
		if m.Lane < 0 || m.Lane >= render.LaneCount {
			return false, nil
		}
		g.state.Pressed[m.Lane] = false
		return true, nil
	case input.SystemKey:
		if input.KeyEscape == m.Key {
			g.leave = true
			return true, nil
		}
	}
	return false, nil
}

func (g *GamePage) OnUpdate(dt time.Duration, ctx *page.Context) (page.Transition, error) {
	if g.leave {
		g.leave = false
		return page.Switch(page.Title), nil
	}
	if nil == g.processor || !g.started {
		return page.Stay(), nil
	}
	for _, ev := range g.processor.Update(time.Now()) {
		switch ev.Kind {
		case EventBGM:
			g.playSound(ev.Sound, ctx)
		case EventBGA:
			g.showImage(ev, ctx)
		case EventNote:
			// Notes outside the local player side are ignored.
		}
	}
	return page.Stay(), nil
}

func (g *GamePage) OnRender(ctx *page.Context) []render.Instance {
	return BuildInstances(g.processor, &g.state, g.cfg.Theme)
}

// State exposes the scoring state for inspection.
func (g *GamePage) State() State { return g.state }

// Hits exposes the judged presses so far.
func (g *GamePage) Hits() []Hit { return g.hits }

// judge grades a key press against the nearest visible note on its
// lane. A judged note is consumed and never judged twice.
func (g *GamePage) judge(lane int, ctx *page.Context) {
	if nil == g.processor {
		return
	}
	visible := g.processor.VisibleEvents()
	candidates := visible[:0:0]
	for _, v := range visible {
		if !g.consumed[v.Event.ID] {
			candidates = append(candidates, v)
		}
	}
	best, ok := SelectNote(candidates, lane)
	if !ok {
		return
	}
	g.consumed[best.Event.ID] = true
	grade := GradeFor(TimeError(g.cfg.Judge, best.Ratio), g.cfg.Judge)
	g.state.Apply(grade)
	g.hits = append(g.hits, Hit{
		Lane:  lane,
		Time:  g.processor.Elapsed(),
		Grade: grade,
	})
	if grade >= GradeGood {
		g.playSound(best.Event.Sound, ctx)
	} else {
		ctx.SendVisual(render.BgaPoorTrigger{})
	}
}

func (g *GamePage) playSound(id SoundID, ctx *page.Context) {
	p, ok := g.cfg.Sounds[id]
	if !ok {
		return
	}
	ctx.SendAudio(audio.Play{Path: p})
}

func (g *GamePage) showImage(ev PlayheadEvent, ctx *page.Context) {
	a, ok := g.cfg.Images[ev.Image]
	if !ok {
		return
	}
	layer := visualLayer(ev.Layer)
	if a.Video {
		ctx.SendVisual(render.VideoPlay{Layer: layer, Path: a.Path, Loop: false})
		return
	}
	ctx.SendVisual(render.BgaChange{Layer: layer, Path: a.Path})
}

func visualLayer(l ChartLayer) bga.Layer {
	switch l {
	case ChartLayerOverlay:
		return bga.LayerOverlay
	case ChartLayerOverlay2:
		return bga.LayerOverlay2
	case ChartLayerPoor:
		return bga.LayerPoor
	}
	return bga.LayerBase
}

// GameBuilder rebuilds a fresh play session for managed transitions.
type GameBuilder struct {
	Config GameConfig
}

func (b *GameBuilder) ID() page.ID { return page.Game }

func (b *GameBuilder) Build() (page.Page, error) {
	return NewGamePage(b.Config), nil
}
