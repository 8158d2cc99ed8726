package page

import (
	"time"

	"git.lost.host/meutraa/otoge/internal/audio"
	"git.lost.host/meutraa/otoge/internal/input"
	"git.lost.host/meutraa/otoge/internal/render"
)

// ID identifies a registered page.
type ID uint8

const (
	Title ID = iota
	Game
	Settings
	Result
	SongSelect
)

func (id ID) String() string {
	switch id {
	case Title:
		return "title"
	case Game:
		return "game"
	case Settings:
		return "settings"
	case Result:
		return "result"
	case SongSelect:
		return "song-select"
	}
	return "unknown"
}

// Event is a lifecycle notification delivered outside the regular
// enter/leave pairs.
type Event uint8

const (
	// Pause is sent to a page when a modal page is pushed above it.
	Pause Event = iota
	// Resume is sent to a page when the page above it is popped.
	Resume
	// Resize is sent when the presentation surface changes size.
	Resize
)

// Context carries the shared resources a page runs against.
type Context struct {
	VisualTx chan<- render.Msg
	AudioTx  chan<- audio.Msg
	Width    float64
	Height   float64
}

// SendVisual enqueues a visual message without blocking. The newest
// message is dropped when the channel is full.
func (c *Context) SendVisual(msg render.Msg) bool {
	select {
	case c.VisualTx <- msg:
		return true
	default:
		return false
	}
}

// SendAudio enqueues an audio command without blocking.
func (c *Context) SendAudio(msg audio.Msg) bool {
	select {
	case c.AudioTx <- msg:
		return true
	default:
		return false
	}
}

// Transition is a page's request to the state machine, consumed once
// per tick.
type Transition struct {
	kind transitionKind
	id   ID
}

type transitionKind uint8

const (
	transitionStay transitionKind = iota
	transitionSwitch
	transitionPush
	transitionPop
	transitionExit
)

func Stay() Transition          { return Transition{kind: transitionStay} }
func Switch(id ID) Transition   { return Transition{kind: transitionSwitch, id: id} }
func PushPage(id ID) Transition { return Transition{kind: transitionPush, id: id} }
func PopPage() Transition       { return Transition{kind: transitionPop} }
func Exit() Transition          { return Transition{kind: transitionExit} }

// Page is one top-level game screen.
type Page interface {
	ID() ID
	// OnInit runs once when the instance is first constructed.
	OnInit(ctx *Context) error
	// OnEnter runs every time the page becomes active.
	OnEnter(ctx *Context) error
	// OnLeave runs every time the page stops being active.
	OnLeave(ctx *Context) error
	// OnInput reports whether the message was consumed.
	OnInput(msg input.Msg, ctx *Context) (bool, error)
	// OnUpdate advances the page by one tick and requests a transition.
	OnUpdate(dt time.Duration, ctx *Context) (Transition, error)
	// OnRender produces the instance list for the current state.
	OnRender(ctx *Context) []render.Instance
	OnEvent(ev Event, ctx *Context) error
	// OnCleanup releases page resources; not called on cached pages.
	OnCleanup(ctx *Context) error
}

// Builder constructs fresh page instances for managed transitions.
type Builder interface {
	ID() ID
	Build() (Page, error)
}

// Base provides no-op lifecycle hooks for embedding.
type Base struct{}

func (Base) OnInit(*Context) error                     { return nil }
func (Base) OnEnter(*Context) error                    { return nil }
func (Base) OnLeave(*Context) error                    { return nil }
func (Base) OnInput(input.Msg, *Context) (bool, error) { return false, nil }
func (Base) OnUpdate(time.Duration, *Context) (Transition, error) {
	return Stay(), nil
}
func (Base) OnRender(*Context) []render.Instance { return nil }
func (Base) OnEvent(Event, *Context) error       { return nil }
func (Base) OnCleanup(*Context) error            { return nil }
