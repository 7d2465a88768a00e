// Package assets implements the reference-counted resource cache: images,
// audio file data and sprite-atlas metadata are loaded on first acquire,
// shared while referenced, and evicted by the per-frame prune once the last
// reference is released. The cache's lifecycle is independent of entity and
// component state.
package assets

import (
	"image"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// resource is one cached entry. refs counts outstanding acquires; Prune
// evicts entries whose count has dropped to zero.
type resource struct {
	value any
	refs  int
}

// Cache loads and shares media resources keyed by file path. It is confined
// to the frame-loop goroutine, like everything else in the framework.
type Cache struct {
	log       *zap.Logger
	resources map[string]*resource
}

// NewCache creates an empty cache. A nil logger disables diagnostics.
func NewCache(log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{
		log:       log,
		resources: make(map[string]*resource, 32),
	}
}

// acquire returns the cached value for key, loading it on first use. Every
// successful call adds one reference; callers pair it with a Release.
func (c *Cache) acquire(key string, load func() (any, error)) (any, error) {
	if r, ok := c.resources[key]; ok {
		r.refs++
		return r.value, nil
	}
	v, err := load()
	if err != nil {
		return nil, err
	}
	c.resources[key] = &resource{value: v, refs: 1}
	c.log.Debug("asset loaded", zap.String("asset", key))
	return v, nil
}

// AcquireImage loads a PNG image as an ebiten texture, or returns the cached
// one.
func (c *Cache) AcquireImage(path string) (*ebiten.Image, error) {
	v, err := c.acquire(path, func() (any, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "open image %s", path)
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return nil, errors.Wrapf(err, "decode image %s", path)
		}
		return ebiten.NewImageFromImage(img), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*ebiten.Image), nil
}

// AcquireAtlas loads sprite-atlas metadata from a YAML sidecar file, or
// returns the cached one.
func (c *Cache) AcquireAtlas(path string) (*Atlas, error) {
	v, err := c.acquire(path, func() (any, error) {
		return LoadAtlas(path)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Atlas), nil
}

// AcquireAudio loads an audio file's raw bytes, or returns the cached ones.
// Decoding happens at the player, which knows the output sample rate.
func (c *Cache) AcquireAudio(path string) ([]byte, error) {
	v, err := c.acquire(path, func() (any, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read audio %s", path)
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Release drops one reference to key. The resource stays resident until the
// next Prune, so a release/acquire pair within one frame is free. Releasing
// an unknown key or one with no outstanding references is a logged no-op.
func (c *Cache) Release(key string) {
	r, ok := c.resources[key]
	if !ok {
		c.log.Warn("release of unknown asset", zap.String("asset", key))
		return
	}
	if r.refs == 0 {
		c.log.Warn("release of unreferenced asset", zap.String("asset", key))
		return
	}
	r.refs--
}

// Prune evicts every resource with no outstanding references, returning the
// number evicted. The engine calls it once per frame.
func (c *Cache) Prune() int {
	evicted := 0
	for key, r := range c.resources {
		if r.refs > 0 {
			continue
		}
		if img, ok := r.value.(*ebiten.Image); ok {
			img.Deallocate()
		}
		delete(c.resources, key)
		evicted++
		c.log.Debug("asset evicted", zap.String("asset", key))
	}
	return evicted
}

// Len returns the number of resident resources, referenced or not.
func (c *Cache) Len() int {
	return len(c.resources)
}

// Refs returns the outstanding reference count for key, zero if unknown.
func (c *Cache) Refs(key string) int {
	if r, ok := c.resources[key]; ok {
		return r.refs
	}
	return 0
}
