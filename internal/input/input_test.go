package input

import "testing"

func TestMapLane(t *testing.T) {
	m := NewMap([]rune("azsxdcfv"))

	lanes := map[rune]int{'a': 0, 'z': 1, 's': 2, 'v': 7}
	for r, expected := range lanes {
		lane, ok := m.Lane(r)
		if !ok || lane != expected {
			t.Log("rune    ", string(r))
			t.Log("out     ", lane, ok)
			t.Log("expected", expected)
			t.Fail()
		}
	}

	if _, ok := m.Lane('q'); ok {
		t.Log("unmapped rune should not resolve")
		t.Fail()
	}
}

func TestMapTruncates(t *testing.T) {
	m := NewMap([]rune("azsxdcfvgb"))
	if _, ok := m.Lane('g'); ok {
		t.Log("keys beyond the lane count should be dropped")
		t.Fail()
	}
	if lane, ok := m.Lane('v'); !ok || 7 != lane {
		t.Log("eighth key should map to lane 7")
		t.Fail()
	}
}

func TestMapDuplicateKeepsFirst(t *testing.T) {
	m := NewMap([]rune("aazx"))
	if lane, ok := m.Lane('a'); !ok || 0 != lane {
		t.Log("duplicate key should keep its first lane, got", lane, ok)
		t.Fail()
	}
}
