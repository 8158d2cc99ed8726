package page

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/otoge/internal/input"
	"git.lost.host/meutraa/otoge/internal/render"
)

// Manager owns the active page, the modal stack, and the cache of
// page instances that survive being left.
type Manager struct {
	ctx      Context
	current  Page
	stack    []ID
	builders map[ID]Builder
	keep     map[ID]bool
	cached   map[ID]Page
}

func NewManager(ctx Context) *Manager {
	return &Manager{
		ctx:      ctx,
		builders: make(map[ID]Builder),
		keep:     make(map[ID]bool),
		cached:   make(map[ID]Page),
	}
}

// Register adds a builder for id. Cached pages are retained when left
// and re-entered without re-running their init hook.
func (m *Manager) Register(b Builder, cached bool) error {
	if _, ok := m.builders[b.ID()]; ok {
		return fmt.Errorf("page already registered: %v", b.ID())
	}
	m.builders[b.ID()] = b
	m.keep[b.ID()] = cached
	return nil
}

// SetCurrent installs p as the active page, running its init and
// enter hooks. Any previous page is retired first.
func (m *Manager) SetCurrent(p Page) error {
	if nil != m.current {
		if err := m.retire(m.current); nil != err {
			return err
		}
		m.current = nil
	}
	if err := p.OnInit(&m.ctx); nil != err {
		return fmt.Errorf("unable to init %v page: %w", p.ID(), err)
	}
	if err := p.OnEnter(&m.ctx); nil != err {
		return fmt.Errorf("unable to enter %v page: %w", p.ID(), err)
	}
	m.current = p
	return nil
}

// SwitchTo replaces the active page with id. The modal stack is
// unaffected.
func (m *Manager) SwitchTo(id ID) error {
	if err := m.ensureKnown(id); nil != err {
		return err
	}
	if nil != m.current {
		if err := m.retire(m.current); nil != err {
			return err
		}
		m.current = nil
	}
	p, err := m.obtain(id)
	if nil != err {
		return err
	}
	m.current = p
	return nil
}

// Push suspends the active page onto the stack and activates id. Only
// cache-enabled pages keep their instance for the later Pop.
func (m *Manager) Push(id ID) error {
	if err := m.ensureKnown(id); nil != err {
		return err
	}
	if nil != m.current {
		cur := m.current
		if err := cur.OnEvent(Pause, &m.ctx); nil != err {
			return fmt.Errorf("unable to pause %v page: %w", cur.ID(), err)
		}
		if m.keep[cur.ID()] {
			m.cached[cur.ID()] = cur
		}
		m.stack = append(m.stack, cur.ID())
		m.current = nil
	}
	p, err := m.obtain(id)
	if nil != err {
		return err
	}
	m.current = p
	return nil
}

// Pop retires the active page and resumes the most recently pushed
// one.
func (m *Manager) Pop() error {
	if 0 == len(m.stack) {
		return fmt.Errorf("page stack is empty")
	}
	if nil != m.current {
		if err := m.retire(m.current); nil != err {
			return err
		}
		m.current = nil
	}
	id := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	p, ok := m.cached[id]
	if ok {
		if err := p.OnEvent(Resume, &m.ctx); nil != err {
			return fmt.Errorf("unable to resume %v page: %w", id, err)
		}
	} else {
		var err error
		if p, err = m.build(id); nil != err {
			return err
		}
	}
	if err := p.OnEnter(&m.ctx); nil != err {
		return fmt.Errorf("unable to enter %v page: %w", id, err)
	}
	m.current = p
	return nil
}

// HandleInput forwards msg to the active page and reports whether it
// was consumed.
func (m *Manager) HandleInput(msg input.Msg) (bool, error) {
	if nil == m.current {
		return false, nil
	}
	return m.current.OnInput(msg, &m.ctx)
}

// Update ticks the active page and applies its requested transition.
// The returned bool is false once the page machine should exit.
func (m *Manager) Update(dt time.Duration) (bool, error) {
	if nil == m.current {
		return true, nil
	}
	tr, err := m.current.OnUpdate(dt, &m.ctx)
	if nil != err {
		return false, err
	}
	switch tr.kind {
	case transitionStay:
		return true, nil
	case transitionSwitch:
		return true, m.SwitchTo(tr.id)
	case transitionPush:
		return true, m.Push(tr.id)
	case transitionPop:
		return true, m.Pop()
	case transitionExit:
		return false, nil
	}
	return true, nil
}

func (m *Manager) Render() []render.Instance {
	if nil == m.current {
		return nil
	}
	return m.current.OnRender(&m.ctx)
}

// Broadcast delivers ev to the active page.
func (m *Manager) Broadcast(ev Event) error {
	if nil == m.current {
		return nil
	}
	return m.current.OnEvent(ev, &m.ctx)
}

// Current returns the active page, or nil.
func (m *Manager) Current() Page { return m.current }

func (m *Manager) ensureKnown(id ID) error {
	if _, ok := m.builders[id]; ok {
		return nil
	}
	if _, ok := m.cached[id]; ok {
		return nil
	}
	return fmt.Errorf("page not registered: %v", id)
}

func (m *Manager) build(id ID) (Page, error) {
	b, ok := m.builders[id]
	if !ok {
		return nil, fmt.Errorf("page not registered: %v", id)
	}
	p, err := b.Build()
	if nil != err {
		return nil, fmt.Errorf("unable to build %v page: %w", id, err)
	}
	if err := p.OnInit(&m.ctx); nil != err {
		return nil, fmt.Errorf("unable to init %v page: %w", id, err)
	}
	return p, nil
}

// obtain activates a cached instance when one exists, otherwise
// builds and initializes a fresh one. The enter hook runs either way.
func (m *Manager) obtain(id ID) (Page, error) {
	p, ok := m.cached[id]
	if !ok {
		var err error
		if p, err = m.build(id); nil != err {
			return nil, err
		}
	}
	if err := p.OnEnter(&m.ctx); nil != err {
		return nil, fmt.Errorf("unable to enter %v page: %w", id, err)
	}
	return p, nil
}

// retire runs the leave hook and either caches the instance or tears
// it down.
func (m *Manager) retire(p Page) error {
	if err := p.OnLeave(&m.ctx); nil != err {
		return fmt.Errorf("unable to leave %v page: %w", p.ID(), err)
	}
	if m.keep[p.ID()] {
		m.cached[p.ID()] = p
		return nil
	}
	delete(m.cached, p.ID())
	if err := p.OnCleanup(&m.ctx); nil != err {
		return fmt.Errorf("unable to clean up %v page: %w", p.ID(), err)
	}
	return nil
}
