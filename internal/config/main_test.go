package config

import "testing"

func TestJudgePresets(t *testing.T) {
	for name, expected := range judgePresets {
		*judge = name
		params, err := Judge()
		if nil != err {
			t.Fatal(err)
		}
		if params != expected {
			t.Log("preset  ", name)
			t.Log("out     ", params)
			t.Fail()
		}
		for i := 1; i < len(params.Windows); i++ {
			if params.Windows[i] <= params.Windows[i-1] {
				t.Log("preset", name, "windows must ascend")
				t.Fail()
			}
		}
		if params.Travel < params.Windows[3] {
			t.Log("preset", name, "travel shorter than its widest window")
			t.Fail()
		}
	}
}

func TestJudgeUnknownPreset(t *testing.T) {
	*judge = "impossible"
	if _, err := Judge(); nil == err {
		t.Fatal("expected an error for an unknown preset")
	}
}

func TestKeysCoverLanes(t *testing.T) {
	*keys = "azsxdcfv"
	if 8 != len(Keys()) {
		t.Fatal("keys    ", Keys())
	}
}
