package bga

import (
	"log"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Preload decodes every path into the cache ahead of playback,
// populating both preprocessing variants. Paths are deduplicated and
// spread over a bounded worker pool; progress is logged once per
// second. Preload returns once every worker has drained the queue.
func Preload(c *Cache, paths []string, workers int) {
	seen := make(map[string]struct{}, len(paths))
	work := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		work = append(work, p)
	}

	total := uint32(len(work))
	if total == 0 {
		log.Printf("bga preload 0/0")
		log.Println("bga preload finished")
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
			log.Printf("bga preload %v/%v", atomic.LoadUint32(&loaded), total)
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
				if err := EnsureVariants(c, path); nil != err {
					log.Println("skipping bga asset:", err)
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
	log.Println("bga preload finished")
}
