package audio

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
)

type nopSink struct {
	inits int
	plays int
}

func (s *nopSink) Init(format beep.Format) error { s.inits++; return nil }
func (s *nopSink) Play(beep.Streamer)            { s.plays++ }

// writeTestWav writes a short silent 16-bit mono pcm file.
func writeTestWav(t *testing.T, dir, name string) string {
	t.Helper()
	var buf bytes.Buffer
	samples := make([]byte, 2*64)
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(samples)))
	buf.WriteString("WAVEfmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1))     // pcm
	binary.Write(&buf, binary.LittleEndian, uint16(1))     // mono
	binary.Write(&buf, binary.LittleEndian, uint32(44100)) // sample rate
	binary.Write(&buf, binary.LittleEndian, uint32(44100*2))
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(samples)))
	buf.Write(samples)

	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, buf.Bytes(), 0o644); nil != err {
		t.Fatal(err)
	}
	return p
}

func TestRunPreloadSignalsOnce(t *testing.T) {
	dir := t.TempDir()
	wav := writeTestWav(t, dir, "a.wav")
	missing := filepath.Join(dir, "missing.wav")

	msgs := make(chan Msg, 4)
	ready := make(chan Event, 1)
	sink := &nopSink{}
	done := make(chan struct{})
	go func() {
		Run(msgs, ready, sink, 2)
		close(done)
	}()

	// A missing file is skipped, never blocking the signal.
	msgs <- PreloadAll{Files: []string{wav, missing, wav}}
	select {
	case ev := <-ready:
		if PreloadFinished != ev {
			t.Error("unexpected event", ev)
		}
	case <-time.After(10 * time.Second):
		t.Error("preload never signalled completion")
	}

	msgs <- Play{Path: wav}
	msgs <- Play{Path: missing}
	close(msgs)
	<-done

	if 1 != sink.inits {
		t.Log("inits   ", sink.inits)
		t.Fail()
	}
	if 1 != sink.plays {
		t.Log("plays   ", sink.plays)
		t.Fail()
	}
}

func TestRunPreloadEmpty(t *testing.T) {
	msgs := make(chan Msg, 1)
	ready := make(chan Event, 1)
	done := make(chan struct{})
	go func() {
		Run(msgs, ready, &nopSink{}, 2)
		close(done)
	}()

	msgs <- PreloadAll{}
	select {
	case <-ready:
	case <-time.After(time.Second):
		t.Error("empty preload should signal immediately")
	}
	close(msgs)
	<-done
}

func TestDecodeUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(p, []byte("not audio"), 0o644); nil != err {
		t.Fatal(err)
	}
	if _, err := decodeFile(p); nil == err {
		t.Fatal("expected an error for an unknown extension")
	}
}

func TestCacheSharesBuffers(t *testing.T) {
	dir := t.TempDir()
	wav := writeTestWav(t, dir, "a.wav")
	c := newCache()
	first, err := c.buffer(wav)
	if nil != err {
		t.Fatal(err)
	}
	second, err := c.buffer(wav)
	if nil != err {
		t.Fatal(err)
	}
	if first != second {
		t.Log("expected the cached buffer to be shared")
		t.Fail()
	}
}
