package game

import (
	"time"

	"git.lost.host/meutraa/otoge/internal/render"
)

// Grade orders judgments worst to best so comparisons read
// naturally.
type Grade uint8

const (
	GradeMiss Grade = iota
	GradeBad
	GradeGood
	GradeGreat
	GradePerfect
)

func (g Grade) String() string {
	switch g {
	case GradePerfect:
		return "perfect"
	case GradeGreat:
		return "great"
	case GradeGood:
		return "good"
	case GradeBad:
		return "bad"
	}
	return "miss"
}

// JudgeParams fixes the scroll travel time and the four timing
// windows, tightest first.
type JudgeParams struct {
	Travel  time.Duration
	Windows [4]time.Duration
}

// SelectNote picks the judgeable note for a press on lane: the
// first-player visible note on that lane nearest the judgment line.
// Ties keep the earliest candidate.
func SelectNote(visible []VisibleNote, lane int) (VisibleNote, bool) {
	var best VisibleNote
	found := false
	for _, v := range visible {
		if EventNote != v.Event.Kind || Player1 != v.Event.Side {
			continue
		}
		l, ok := KeyToLane(v.Event.Key)
		if !ok || l != lane {
			continue
		}
		if v.Ratio < 0 || v.Ratio > 1 {
			continue
		}
		if !found || v.Ratio < best.Ratio {
			best = v
			found = true
		}
	}
	return best, found
}

// TimeError converts a note's scroll ratio back into a timing error.
func TimeError(params JudgeParams, ratio float64) time.Duration {
	return time.Duration(float64(params.Travel) * ratio)
}

// GradeFor places a timing error into the tightest window that
// admits it. An error beyond the widest window is a miss.
func GradeFor(err time.Duration, params JudgeParams) Grade {
	if err < 0 {
		err = -err
	}
	switch {
	case err <= params.Windows[0]:
		return GradePerfect
	case err <= params.Windows[1]:
		return GradeGreat
	case err <= params.Windows[2]:
		return GradeGood
	case err <= params.Windows[3]:
		return GradeBad
	}
	return GradeMiss
}

// State is the per-play scoring state.
type State struct {
	Pressed [render.LaneCount]bool
	Gauge   float64
	Combo   uint32
}

func NewState() State {
	return State{Gauge: 0.5}
}

// Apply folds one judgment into the combo and the gauge. The gauge
// stays within [0, 1].
func (s *State) Apply(g Grade) {
	switch g {
	case GradePerfect, GradeGreat:
		s.Combo++
		s.Gauge += 0.02
	case GradeGood:
		s.Combo++
		s.Gauge += 0.01
	case GradeBad:
		s.Combo = 0
		s.Gauge -= 0.03
	default:
		s.Combo = 0
		s.Gauge -= 0.05
	}
	if s.Gauge < 0 {
		s.Gauge = 0
	} else if s.Gauge > 1 {
		s.Gauge = 1
	}
}

// Hit records one judged key press.
type Hit struct {
	Lane  int
	Time  time.Duration
	Grade Grade
}
