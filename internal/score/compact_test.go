package score

import (
	"testing"
	"time"

	"git.lost.host/meutraa/otoge/internal/game"
)

var compactTests = map[*([]game.Hit)]([]HitsCompact){
	{}: {},
	{{Lane: 0, Time: 100, Grade: game.GradePerfect}, {Lane: 3, Time: 200, Grade: game.GradeGood}}: {
		{Lane: 0, Times: []time.Duration{100}, Grades: []uint8{4}},
		{Lane: 1, Times: []time.Duration{}, Grades: []uint8{}},
		{Lane: 2, Times: []time.Duration{}, Grades: []uint8{}},
		{Lane: 3, Times: []time.Duration{200}, Grades: []uint8{2}},
	},
	{{Lane: 1, Time: 2, Grade: game.GradeMiss}, {Lane: 1, Time: 1, Grade: game.GradeBad}}: {
		{Lane: 0, Times: []time.Duration{}, Grades: []uint8{}},
		{Lane: 1, Times: []time.Duration{2, 1}, Grades: []uint8{0, 1}},
	},
}

func TestCompactHits(t *testing.T) {
	equal := func(p, q []HitsCompact) bool {
		if len(p) != len(q) {
			return false
		}
		for i := 0; i < len(p); i++ {
			pi, qi := p[i], q[i]
			if pi.Lane != qi.Lane {
				return false
			}
			if len(pi.Times) != len(qi.Times) || len(pi.Grades) != len(qi.Grades) {
				return false
			}
			for j := 0; j < len(pi.Times); j++ {
				if pi.Times[j] != qi.Times[j] || pi.Grades[j] != qi.Grades[j] {
					return false
				}
			}
		}
		return true
	}

	for in, expected := range compactTests {
		out := compactHits(*in)
		if !equal(out, expected) {
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestUncompactHits(t *testing.T) {
	equal := func(p, q []game.Hit) bool {
		if len(p) != len(q) {
			return false
		}
		for i := 0; i < len(p); i++ {
			if p[i] != q[i] {
				return false
			}
		}
		return true
	}

	for expected, in := range compactTests {
		out := uncompactHits(in)
		if !equal(out, *expected) {
			t.Log("in      ", in)
			t.Log("out     ", out)
			t.Log("expected", *expected)
			t.Fail()
		}
	}
}
