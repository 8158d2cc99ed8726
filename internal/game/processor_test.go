package game

import (
	"testing"
	"time"
)

func testChart() *Chart {
	return &Chart{
		Title: "test",
		Notes: []Note{
			{Side: Player1, Key: 1, Time: 500 * time.Millisecond, Sound: "a"},
			{Side: Player1, Key: 2, Time: 1000 * time.Millisecond, Sound: "b"},
			{Side: Player2, Key: 1, Time: 1500 * time.Millisecond, Sound: "c"},
		},
		BGMs: []BGM{
			{Time: 250 * time.Millisecond, Sound: "d"},
			{Time: 1000 * time.Millisecond, Sound: "e"},
		},
		BGAs: []BGAChange{
			{Time: 0, Layer: ChartLayerBase, Image: "i"},
		},
		Sounds: map[SoundID]string{"a": "a.wav", "b": "b.wav", "c": "c.wav", "d": "d.wav", "e": "e.wav"},
		Images: map[ImageID]string{"i": "i.bmp"},
	}
}

func TestProcessorEmitsEachEventOnce(t *testing.T) {
	p := NewProcessor(testChart(), LayoutBeat7, 600*time.Millisecond, 1.0)
	start := time.Now()
	p.StartPlay(start)

	seen := map[uint64]int{}
	steps := []time.Duration{
		0,
		300 * time.Millisecond,
		300 * time.Millisecond, // no progress, nothing new
		1000 * time.Millisecond,
		2000 * time.Millisecond,
		2000 * time.Millisecond,
	}
	var prev time.Duration = -1
	for _, step := range steps {
		for _, ev := range p.Update(start.Add(step)) {
			seen[ev.ID]++
			if ev.Time < prev {
				t.Log("event out of order at", ev.Time, "after", prev)
				t.Fail()
			}
			prev = ev.Time
		}
	}

	if 6 != len(seen) {
		t.Log("expected all 6 events, got", len(seen))
		t.Fail()
	}
	for id, n := range seen {
		if 1 != n {
			t.Log("event", id, "emitted", n, "times")
			t.Fail()
		}
	}
}

func TestProcessorNotStarted(t *testing.T) {
	p := NewProcessor(testChart(), LayoutBeat7, 600*time.Millisecond, 1.0)
	if nil != p.Update(time.Now()) {
		t.Log("expected no events before start")
		t.Fail()
	}
	if nil != p.VisibleEvents() {
		t.Log("expected no visible notes before start")
		t.Fail()
	}
}

func TestProcessorVisibleRatio(t *testing.T) {
	p := NewProcessor(testChart(), LayoutBeat7, 600*time.Millisecond, 1.0)
	start := time.Now()
	p.StartPlay(start)

	// 200ms in, the 500ms note is 300ms from the line.
	p.Update(start.Add(200 * time.Millisecond))
	visible := p.VisibleEvents()
	if 1 != len(visible) {
		t.Fatal("expected one visible note, got", len(visible))
	}
	if !closeTo(visible[0].Ratio, 0.5) {
		t.Log("ratio   ", visible[0].Ratio)
		t.Log("expected", 0.5)
		t.Fail()
	}

	// 500ms in, the first note sits exactly on the line and the
	// 1000ms note has just entered the 600ms window.
	p.Update(start.Add(500 * time.Millisecond))
	visible = p.VisibleEvents()
	if 2 != len(visible) {
		t.Fatal("expected two visible notes, got", len(visible))
	}
	if !closeTo(visible[0].Ratio, 0) {
		t.Log("ratio   ", visible[0].Ratio)
		t.Fail()
	}
}

func TestProcessorRate(t *testing.T) {
	p := NewProcessor(testChart(), LayoutBeat7, 600*time.Millisecond, 2.0)
	start := time.Now()
	p.StartPlay(start)

	// At double rate, 250ms of wall time covers 500ms of chart time.
	events := p.Update(start.Add(250 * time.Millisecond))
	times := map[time.Duration]bool{}
	for _, ev := range events {
		times[ev.Time] = true
	}
	if !times[500*time.Millisecond] {
		t.Log("expected the 500ms note to be due at wall 250ms")
		t.Fail()
	}
	if times[1000*time.Millisecond] {
		t.Log("the 1000ms events should not be due yet")
		t.Fail()
	}
}

func TestProcessorManifests(t *testing.T) {
	p := NewProcessor(testChart(), LayoutBeat7, 600*time.Millisecond, 1.0)
	if 5 != len(p.SoundFiles()) {
		t.Log("sounds  ", p.SoundFiles())
		t.Fail()
	}
	if 1 != len(p.ImageFiles()) {
		t.Log("images  ", p.ImageFiles())
		t.Fail()
	}
}
