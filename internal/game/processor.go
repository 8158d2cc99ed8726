package game

import (
	"sort"
	"time"
)

type KeyLayout uint8

const (
	LayoutBeat5 KeyLayout = iota
	LayoutBeat7
)

type EventKind uint8

const (
	EventNote EventKind = iota
	EventBGM
	EventBGA
)

// PlayheadEvent is one timed chart event, flattened so notes, BGM
// keysounds and BGA changes share a single ordered stream.
type PlayheadEvent struct {
	ID    uint64
	Kind  EventKind
	Time  time.Duration
	Side  Side
	Key   Key
	Sound SoundID
	Layer ChartLayer
	Image ImageID
}

// VisibleNote is a note inside the scroll window. Ratio is 0 at the
// judgment line and 1 where the note enters the window.
type VisibleNote struct {
	Event PlayheadEvent
	Ratio float64
}

// Processor advances a playhead through a chart's event stream,
// emitting each event exactly once and exposing the notes currently
// in the scroll window.
type Processor struct {
	chart  *Chart
	layout KeyLayout
	travel time.Duration
	rate   float64

	events    []PlayheadEvent
	cursor    int
	notes     []PlayheadEvent
	visCursor int

	startedAt time.Time
	started   bool
	elapsed   time.Duration
}

// NewProcessor builds the sorted event stream for chart. travel is
// the time a note spends scrolling from window entry to the judgment
// line, rate a playback speed multiplier.
func NewProcessor(chart *Chart, layout KeyLayout, travel time.Duration, rate float64) *Processor {
	if rate <= 0 {
		rate = 1.0
	}
	events := make([]PlayheadEvent, 0, len(chart.Notes)+len(chart.BGMs)+len(chart.BGAs))
	for _, n := range chart.Notes {
		events = append(events, PlayheadEvent{
			Kind:  EventNote,
			Time:  n.Time,
			Side:  n.Side,
			Key:   n.Key,
			Sound: n.Sound,
		})
	}
	for _, b := range chart.BGMs {
		events = append(events, PlayheadEvent{
			Kind:  EventBGM,
			Time:  b.Time,
			Sound: b.Sound,
		})
	}
	for _, b := range chart.BGAs {
		events = append(events, PlayheadEvent{
			Kind:  EventBGA,
			Time:  b.Time,
			Layer: b.Layer,
			Image: b.Image,
		})
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})
	notes := make([]PlayheadEvent, 0, len(chart.Notes))
	for i := range events {
		events[i].ID = uint64(i)
		if EventNote == events[i].Kind {
			notes = append(notes, events[i])
		}
	}
	return &Processor{
		chart:  chart,
		layout: layout,
		travel: travel,
		rate:   rate,
		events: events,
		notes:  notes,
	}
}

func (p *Processor) Chart() *Chart          { return p.chart }
func (p *Processor) Layout() KeyLayout      { return p.layout }
func (p *Processor) Travel() time.Duration  { return p.travel }
func (p *Processor) Started() bool          { return p.started }
func (p *Processor) StartedAt() time.Time   { return p.startedAt }
func (p *Processor) Elapsed() time.Duration { return p.elapsed }

// StartPlay pins the playhead origin and rewinds both cursors, so a
// restart replays the chart from the first event.
func (p *Processor) StartPlay(at time.Time) {
	p.startedAt = at
	p.started = true
	p.elapsed = 0
	p.cursor = 0
	p.visCursor = 0
}

// Update advances the playhead to now and returns the events that
// became due since the previous call, in time order.
func (p *Processor) Update(now time.Time) []PlayheadEvent {
	if !p.started {
		return nil
	}
	p.elapsed = time.Duration(float64(now.Sub(p.startedAt)) * p.rate)
	if p.cursor >= len(p.events) {
		return nil
	}
	start := p.cursor
	for p.cursor < len(p.events) && p.events[p.cursor].Time <= p.elapsed {
		p.cursor++
	}
	if start == p.cursor {
		return nil
	}
	return p.events[start:p.cursor]
}

// VisibleEvents returns the notes currently inside the scroll
// window, nearest the judgment line first.
func (p *Processor) VisibleEvents() []VisibleNote {
	if !p.started {
		return nil
	}
	for p.visCursor < len(p.notes) && p.notes[p.visCursor].Time < p.elapsed {
		p.visCursor++
	}
	var visible []VisibleNote
	for i := p.visCursor; i < len(p.notes); i++ {
		remaining := p.notes[i].Time - p.elapsed
		if remaining > p.travel {
			break
		}
		visible = append(visible, VisibleNote{
			Event: p.notes[i],
			Ratio: float64(remaining) / float64(p.travel),
		})
	}
	return visible
}

// SoundFiles lists the chart-relative paths of every referenced
// keysound.
func (p *Processor) SoundFiles() []string {
	files := make([]string, 0, len(p.chart.Sounds))
	for _, f := range p.chart.Sounds {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// ImageFiles lists the chart-relative paths of every referenced BGA
// image.
func (p *Processor) ImageFiles() []string {
	files := make([]string, 0, len(p.chart.Images))
	for _, f := range p.chart.Images {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}
