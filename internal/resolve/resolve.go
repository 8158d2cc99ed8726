package resolve

import (
	"os"
	"path/filepath"
	"strings"
)

var videoExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mpeg": true,
	".webm": true,
	".mkv":  true,
	".wmv":  true,
}

// IsVideo reports whether path names a video container by extension.
func IsVideo(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}

// Files maps the stem of each referenced name to an on-disk path
// under dir. A reference matches any file sharing its stem whose
// extension is one of exts, compared case-insensitively. The first
// match for a stem wins, so a reference to "bass.wav" can resolve to
// "bass.ogg" when only the ogg exists.
func Files(dir string, names []string, exts []string) map[string]string {
	allowed := make(map[string]bool, len(exts))
	for _, e := range exts {
		allowed[strings.ToLower(e)] = true
	}

	index := map[string]string{}
	for _, sub := range subdirectories(dir, names) {
		entries, err := os.ReadDir(sub)
		if nil != err {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if !allowed[ext] {
				continue
			}
			stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
			key := filepath.Join(relativeTo(dir, sub), stem)
			if _, ok := index[key]; ok {
				continue
			}
			index[key] = filepath.Join(sub, entry.Name())
		}
	}

	resolved := make(map[string]string, len(names))
	for _, name := range names {
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if p, ok := index[filepath.FromSlash(stem)]; ok {
			resolved[name] = p
		} else {
			resolved[name] = filepath.Join(dir, filepath.FromSlash(name))
		}
	}
	return resolved
}

// subdirectories lists dir plus every directory a referenced name
// points into, deduplicated.
func subdirectories(dir string, names []string) []string {
	seen := map[string]bool{dir: true}
	dirs := []string{dir}
	for _, name := range names {
		rel := filepath.Dir(filepath.FromSlash(name))
		if "." == rel {
			continue
		}
		sub := filepath.Join(dir, rel)
		if !seen[sub] {
			seen[sub] = true
			dirs = append(dirs, sub)
		}
	}
	return dirs
}

func relativeTo(dir, sub string) string {
	rel, err := filepath.Rel(dir, sub)
	if nil != err || "." == rel {
		return ""
	}
	return rel
}
