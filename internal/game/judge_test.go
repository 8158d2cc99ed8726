package game

import (
	"testing"
	"time"
)

var testJudge = JudgeParams{
	Travel:  600 * time.Millisecond,
	Windows: [4]time.Duration{16 * time.Millisecond, 36 * time.Millisecond, 80 * time.Millisecond, 120 * time.Millisecond},
}

var gradeTests = map[time.Duration]Grade{
	0:                      GradePerfect,
	12 * time.Millisecond:  GradePerfect,
	16 * time.Millisecond:  GradePerfect,
	17 * time.Millisecond:  GradeGreat,
	36 * time.Millisecond:  GradeGreat,
	37 * time.Millisecond:  GradeGood,
	80 * time.Millisecond:  GradeGood,
	90 * time.Millisecond:  GradeGood,
	81 * time.Millisecond:  GradeBad,
	120 * time.Millisecond: GradeBad,
	121 * time.Millisecond: GradeMiss,
	-12 * time.Millisecond: GradePerfect,
	time.Second:            GradeMiss,
}

func TestGradeFor(t *testing.T) {
	for err, expected := range gradeTests {
		out := GradeFor(err, testJudge)
		if out != expected {
			t.Log("error   ", err)
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestGradeMonotonic(t *testing.T) {
	prev := GradePerfect
	for e := time.Duration(0); e <= 200*time.Millisecond; e += time.Millisecond {
		g := GradeFor(e, testJudge)
		if g > prev {
			t.Log("grade rose from", prev, "to", g, "at", e)
			t.Fail()
		}
		if (GradePerfect == g) != (e <= testJudge.Windows[0]) {
			t.Log("perfect boundary wrong at", e)
			t.Fail()
		}
		prev = g
	}
}

func TestTimeError(t *testing.T) {
	out := TimeError(testJudge, 0.02)
	if 12*time.Millisecond != out {
		t.Log("out     ", out)
		t.Log("expected", 12*time.Millisecond)
		t.Fail()
	}
}

func note(id uint64, key Key, ratio float64) VisibleNote {
	return VisibleNote{
		Event: PlayheadEvent{ID: id, Kind: EventNote, Side: Player1, Key: key},
		Ratio: ratio,
	}
}

func TestSelectNote(t *testing.T) {
	visible := []VisibleNote{
		note(0, 3, 0.8),
		note(1, 3, 0.2),
		note(2, 2, 0.1),
		note(3, 3, 0.2),
		{Event: PlayheadEvent{ID: 4, Kind: EventNote, Side: Player2, Key: 3}, Ratio: 0.05},
	}

	best, ok := SelectNote(visible, 3)
	if !ok {
		t.Fatal("expected a candidate on lane 3")
	}
	// Nearest to the line wins, ties keep the first found.
	if 1 != best.Event.ID {
		t.Log("selected", best.Event.ID)
		t.Fail()
	}

	if _, ok := SelectNote(visible, 5); ok {
		t.Log("expected no candidate on lane 5")
		t.Fail()
	}
}

func TestSelectNoteIgnoresOutOfWindow(t *testing.T) {
	visible := []VisibleNote{
		note(0, 1, -0.1),
		note(1, 1, 1.4),
	}
	if _, ok := SelectNote(visible, 1); ok {
		t.Log("expected notes outside [0,1] to be skipped")
		t.Fail()
	}
}

func TestStateApply(t *testing.T) {
	s := NewState()
	if 0.5 != s.Gauge || 0 != s.Combo {
		t.Fatal("unexpected initial state", s.Gauge, s.Combo)
	}

	s.Apply(GradePerfect)
	s.Apply(GradeGreat)
	s.Apply(GradeGood)
	if 3 != s.Combo {
		t.Log("combo   ", s.Combo)
		t.Fail()
	}
	if !closeTo(s.Gauge, 0.55) {
		t.Log("gauge   ", s.Gauge)
		t.Fail()
	}

	s.Apply(GradeBad)
	if 0 != s.Combo {
		t.Log("combo should reset on bad, got", s.Combo)
		t.Fail()
	}
	if !closeTo(s.Gauge, 0.52) {
		t.Log("gauge   ", s.Gauge)
		t.Fail()
	}

	s.Apply(GradeMiss)
	if !closeTo(s.Gauge, 0.47) {
		t.Log("gauge   ", s.Gauge)
		t.Fail()
	}
}

func TestStateGaugeClamped(t *testing.T) {
	s := NewState()
	for i := 0; i < 100; i++ {
		s.Apply(GradeMiss)
	}
	if 0 != s.Gauge {
		t.Log("gauge should clamp to 0, got", s.Gauge)
		t.Fail()
	}
	for i := 0; i < 100; i++ {
		s.Apply(GradePerfect)
	}
	if 1 != s.Gauge {
		t.Log("gauge should clamp to 1, got", s.Gauge)
		t.Fail()
	}
}

func closeTo(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
