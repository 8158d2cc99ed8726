package input

import (
	"fmt"
	"sync"
	"time"

	"github.com/eiannone/keyboard"
)

// holdDecay is how long after the last press of a lane a release is
// synthesized. Terminals report key repeats but never releases.
const holdDecay = 150 * time.Millisecond

// Capture opens the keyboard and forwards semantic input messages to
// out until the keyboard is closed. Sends never block; when out is
// full the newest event is dropped. The returned func releases the
// keyboard.
func Capture(m *Map, out chan<- Msg) (func(), error) {
	events, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}

	var mu sync.Mutex
	generation := make([]uint64, MaxLanes)

	send := func(msg Msg) {
		select {
		case out <- msg:
		default:
		}
	}

	go func() {
		for ev := range events {
			if nil != ev.Err {
				return
			}
			switch ev.Key {
			case keyboard.KeyEsc:
				send(SystemKey{Key: KeyEscape})
				continue
			case keyboard.KeyEnter:
				send(SystemKey{Key: KeyEnter})
				continue
			}
			lane, ok := m.Lane(ev.Rune)
			if !ok {
				continue
			}
			send(KeyDown{Lane: lane})

			mu.Lock()
			generation[lane]++
			gen := generation[lane]
			mu.Unlock()
			time.AfterFunc(holdDecay, func() {
				mu.Lock()
				live := generation[lane] == gen
				mu.Unlock()
				if live {
					send(KeyUp{Lane: lane})
				}
			})
		}
	}()

	return func() {
		_ = keyboard.Close()
	}, nil
}
