package resolve

import (
	"git.lost.host/meutraa/otoge/internal/game"
)

var (
	audioExtensions = []string{".wav", ".ogg", ".mp3", ".flac"}
	imageExtensions = []string{
		".bmp", ".png", ".jpg", ".jpeg", ".gif",
		".mp4", ".avi", ".mpeg", ".webm", ".mkv", ".wmv",
	}
)

// Assets resolves a chart's sound and image manifests against the
// chart directory.
func Assets(dir string, chart *game.Chart) (map[game.SoundID]string, map[game.ImageID]game.ImageAsset) {
	soundRefs := make([]string, 0, len(chart.Sounds))
	for _, rel := range chart.Sounds {
		soundRefs = append(soundRefs, rel)
	}
	soundPaths := Files(dir, soundRefs, audioExtensions)
	sounds := make(map[game.SoundID]string, len(chart.Sounds))
	for id, rel := range chart.Sounds {
		sounds[id] = soundPaths[rel]
	}

	imageRefs := make([]string, 0, len(chart.Images))
	for _, rel := range chart.Images {
		imageRefs = append(imageRefs, rel)
	}
	imagePaths := Files(dir, imageRefs, imageExtensions)
	images := make(map[game.ImageID]game.ImageAsset, len(chart.Images))
	for id, rel := range chart.Images {
		p := imagePaths[rel]
		images[id] = game.ImageAsset{Path: p, Video: IsVideo(p)}
	}
	return sounds, images
}
