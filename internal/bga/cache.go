package bga

import (
	"sync"
	"sync/atomic"
)

// Layer is a visual background animation layer.
type Layer uint8

const (
	// LayerBase is the main background layer.
	LayerBase Layer = iota
	// LayerOverlay is drawn above the base layer.
	LayerOverlay
	// LayerOverlay2 is drawn above the first overlay.
	LayerOverlay2
	// LayerPoor is hidden until a bad judgement triggers it.
	LayerPoor
)

// Variant selects how a decoded image was preprocessed.
type Variant uint8

const (
	// Raw is the verbatim decode.
	Raw Variant = iota
	// BackgroundRemoved has corner-connected black regions made transparent.
	BackgroundRemoved
)

// Image is a decoded RGBA8 pixel buffer. Immutable once cached.
type Image struct {
	Pix           []uint8
	Width, Height int
}

type cacheKey struct {
	path    string
	variant Variant
}

// Cache is a concurrent (path, variant) -> decoded image store.
// A key is written at most once per process modulo a benign race on
// first concurrent access, where both decodes produce identical pixels.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]*Image

	decodes uint64
}

func NewCache() *Cache {
	return &Cache{entries: map[cacheKey]*Image{}}
}

// GetVariant returns the cached entry for (path, variant), if present.
func (c *Cache) GetVariant(variant Variant, path string) *Image {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[cacheKey{path: path, variant: variant}]
}

func (c *Cache) insertVariant(variant Variant, path string, img *Image) *Image {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[cacheKey{path: path, variant: variant}]; ok {
		return existing
	}
	c.entries[cacheKey{path: path, variant: variant}] = img
	return img
}

// DecodeCount reports how many times an image was decoded from disk.
func (c *Cache) DecodeCount() uint64 {
	return atomic.LoadUint64(&c.decodes)
}

func (c *Cache) countDecode() {
	atomic.AddUint64(&c.decodes, 1)
}

// LayerVariant maps a background animation layer to the preprocessing
// variant it is rendered with. Overlay layers composite over the base
// layer, so their backgrounds are removed.
func LayerVariant(layer Layer) Variant {
	switch layer {
	case LayerOverlay, LayerOverlay2:
		return BackgroundRemoved
	default:
		return Raw
	}
}
