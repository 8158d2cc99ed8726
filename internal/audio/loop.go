package audio

import (
	"log"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Sink plays decoded streamers. The default sink drives the speaker;
// tests substitute a silent one.
type Sink interface {
	Init(format beep.Format) error
	Play(s beep.Streamer)
}

// SpeakerSink plays through the default audio device.
type SpeakerSink struct{}

func (SpeakerSink) Init(format beep.Format) error {
	return speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
}

func (SpeakerSink) Play(s beep.Streamer) {
	speaker.Play(s)
}

// Run services audio commands until msgs is closed. PreloadAll fills
// the sample cache over a bounded worker pool, logging progress once
// per second, then delivers PreloadFinished on ready (a rendezvous of
// capacity one, consumed once by the game loop). Play mixes a cached
// buffer, decoding lazily if preload skipped or missed the path;
// undecodable assets are logged and dropped, never stalling playback.
func Run(msgs <-chan Msg, ready chan<- Event, sink Sink, workers int) {
	c := newCache()
	inited := false

	for msg := range msgs {
		switch m := msg.(type) {
		case PreloadAll:
			preload(c, m.Files, workers)
			ready <- PreloadFinished
		case Play:
			buf, err := c.buffer(m.Path)
			if nil != err {
				log.Println("skipping audio asset:", err)
				continue
			}
			if !inited {
				if err := sink.Init(buf.Format()); nil != err {
					log.Println("unable to init audio sink:", err)
					continue
				}
				inited = true
			}
			sink.Play(buf.Streamer(0, buf.Len()))
		}
	}
}

func preload(c *cache, files []string, workers int) {
	seen := make(map[string]struct{}, len(files))
	work := make([]string, 0, len(files))
	for _, f := range files {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		work = append(work, f)
	}

	total := uint32(len(work))
	if total == 0 {
		log.Printf("audio preload 0/0")
		log.Println("audio preload finished")
		return
	}

	var loaded uint32
	var done uint32
	var reporter sync.WaitGroup
	reporter.Add(1)
	go func() {
		defer reporter.Done()
		for {
			time.Sleep(time.Second)
			log.Printf("audio preload %v/%v", atomic.LoadUint32(&loaded), total)
			if atomic.LoadUint32(&done) != 0 {
				return
			}
		}
	}()

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > 8 {
		workers = 8
	}
	if workers > len(work) {
		workers = len(work)
	}

	queue := make(chan string)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range queue {
				if _, err := c.buffer(path); nil != err {
					log.Println("skipping audio asset:", err)
				}
				atomic.AddUint32(&loaded, 1)
			}
		}()
	}
	for _, p := range work {
		queue <- p
	}
	close(queue)
	wg.Wait()

	atomic.StoreUint32(&done, 1)
	reporter.Wait()
	log.Println("audio preload finished")
}
