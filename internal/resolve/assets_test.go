package resolve

import (
	"path/filepath"
	"testing"

	"git.lost.host/meutraa/otoge/internal/game"
)

func TestAssets(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "bass.ogg")
	touch(t, dir, "back.mp4")
	touch(t, dir, "over.bmp")

	chart := &game.Chart{
		Sounds: map[game.SoundID]string{"a": "bass.wav"},
		Images: map[game.ImageID]string{"v": "back.bmp", "i": "over.bmp"},
	}
	sounds, images := Assets(dir, chart)

	if filepath.Join(dir, "bass.ogg") != sounds["a"] {
		t.Log("sound   ", sounds["a"])
		t.Fail()
	}
	// A reference by stem may land on a video container.
	if !images["v"].Video || filepath.Join(dir, "back.mp4") != images["v"].Path {
		t.Log("video   ", images["v"])
		t.Fail()
	}
	if images["i"].Video || filepath.Join(dir, "over.bmp") != images["i"].Path {
		t.Log("image   ", images["i"])
		t.Fail()
	}
}
