package input

// Msg is a semantic input event delivered to the page state machine.
type Msg interface {
	inputMsg()
}

// KeyDown reports a lane key press.
type KeyDown struct {
	Lane int
}

// KeyUp reports a lane key release.
type KeyUp struct {
	Lane int
}

// SystemKey is a non-lane key with page-level meaning.
type SystemKey struct {
	Key Key
}

func (KeyDown) inputMsg()   {}
func (KeyUp) inputMsg()     {}
func (SystemKey) inputMsg() {}

// Key identifies a system key.
type Key uint8

const (
	KeyEnter Key = iota
	KeyEscape
)

// MaxLanes is the lane count of the widest supported layout.
const MaxLanes = 8

// Map converts bound runes to lane indices. The mapping is total:
// unbound runes report ok == false rather than an error.
type Map struct {
	lanes map[rune]int
}

// NewMap binds up to MaxLanes runes to lanes in order. A repeated
// rune keeps its first lane.
func NewMap(keys []rune) *Map {
	lanes := make(map[rune]int, MaxLanes)
	for i, r := range keys {
		if i >= MaxLanes {
			break
		}
		if _, ok := lanes[r]; ok {
			continue
		}
		lanes[r] = i
	}
	return &Map{lanes: lanes}
}

// Lane returns the lane bound to r, if any.
func (m *Map) Lane(r rune) (int, bool) {
	idx, ok := m.lanes[r]
	return idx, ok
}
