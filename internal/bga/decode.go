package bga

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
)

func decodeFile(c *Cache, path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if nil != err {
		return nil, fmt.Errorf("unable to read image %v: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if nil != err {
		return nil, fmt.Errorf("unable to decode image %v: %w", path, err)
	}
	c.countDecode()
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return &Image{Pix: rgba.Pix, Width: b.Dx(), Height: b.Dy()}, nil
}

func preprocess(raw *Image, variant Variant) *Image {
	if variant != BackgroundRemoved || raw.Width == 0 || raw.Height == 0 {
		return raw
	}
	pix := make([]uint8, len(raw.Pix))
	copy(pix, raw.Pix)
	RemoveBackground(pix, raw.Width, raw.Height)
	return &Image{Pix: pix, Width: raw.Width, Height: raw.Height}
}

// DecodeAndCache returns the decoded image for the variant the given
// layer renders with. A cached entry is returned directly, the
// BackgroundRemoved variant is derived from a cached Raw entry without
// touching the disk, and otherwise the file is decoded once and both
// variants are cached before returning.
func DecodeAndCache(c *Cache, layer Layer, path string) (*Image, error) {
	want := LayerVariant(layer)
	if img := c.GetVariant(want, path); nil != img {
		return img, nil
	}

	if want == BackgroundRemoved {
		if raw := c.GetVariant(Raw, path); nil != raw {
			return c.insertVariant(want, path, preprocess(raw, want)), nil
		}
	}

	raw, err := decodeFile(c, path)
	if nil != err {
		return nil, err
	}
	raw = c.insertVariant(Raw, path, raw)
	processed := c.insertVariant(BackgroundRemoved, path, preprocess(raw, BackgroundRemoved))
	if want == Raw {
		return raw, nil
	}
	return processed, nil
}

// EnsureVariants makes both preprocessing variants of path resident in
// the cache, decoding from disk at most once.
func EnsureVariants(c *Cache, path string) error {
	raw := c.GetVariant(Raw, path)
	processed := c.GetVariant(BackgroundRemoved, path)
	if nil != raw && nil != processed {
		return nil
	}

	if nil == raw {
		decoded, err := decodeFile(c, path)
		if nil != err {
			return err
		}
		raw = c.insertVariant(Raw, path, decoded)
	}
	if nil == processed {
		c.insertVariant(BackgroundRemoved, path, preprocess(raw, BackgroundRemoved))
	}
	return nil
}
