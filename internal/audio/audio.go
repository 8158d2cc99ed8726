package audio

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

// Msg is a command for the audio loop.
type Msg interface {
	audioMsg()
}

// PreloadAll decodes every file into the sample cache ahead of
// playback and signals completion exactly once.
type PreloadAll struct {
	Files []string
}

// Play mixes the sample buffer for a previously resolved path.
type Play struct {
	Path string
}

func (PreloadAll) audioMsg() {}
func (Play) audioMsg()       {}

// Event is a notification produced by the audio loop.
type Event uint8

const (
	// PreloadFinished reports that a PreloadAll request completed.
	PreloadFinished Event = iota
)

var errUnknownFormat = errors.New("unknown audio format")

func decodeFile(p string) (*beep.Buffer, error) {
	f, err := os.Open(p)
	if nil != err {
		return nil, fmt.Errorf("unable to open audio %v: %w", p, err)
	}
	defer f.Close()

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(path.Ext(p)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		return nil, fmt.Errorf("%w: %v", errUnknownFormat, p)
	}
	if nil != err {
		return nil, fmt.Errorf("unable to decode audio %v: %w", p, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return buffer, nil
}

// cache is the path -> decoded sample buffer store shared between the
// preload workers and the playback path. Entries are written at most
// once per path; a duplicate decode on first concurrent access yields
// identical content.
type cache struct {
	mu      sync.RWMutex
	decoded map[string]*beep.Buffer
}

func newCache() *cache {
	return &cache{decoded: map[string]*beep.Buffer{}}
}

func (c *cache) get(path string) *beep.Buffer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.decoded[path]
}

func (c *cache) insert(path string, buf *beep.Buffer) *beep.Buffer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.decoded[path]; ok {
		return existing
	}
	c.decoded[path] = buf
	return buf
}

// buffer returns the cached sample buffer for path, decoding and
// inserting it on a miss.
func (c *cache) buffer(path string) (*beep.Buffer, error) {
	if buf := c.get(path); nil != buf {
		return buf, nil
	}
	buf, err := decodeFile(path)
	if nil != err {
		return nil, err
	}
	return c.insert(path, buf), nil
}
