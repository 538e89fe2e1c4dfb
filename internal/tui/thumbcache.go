package tui

import (
	"fmt"
	"image"

	"github.com/rjcampbel/DisneyMagic/internal/imaging"
)

const defaultThumbCacheSize = 64

// ThumbCache keeps resampled tiles so a frame only rescales images whose
// size changed. Eviction is least recently used.
type ThumbCache struct {
	thumbs  map[string]*image.NRGBA
	order   []string // tracks use order for LRU eviction
	maxSize int
}

// NewThumbCache creates a cache holding at most maxSize thumbnails
func NewThumbCache(maxSize int) *ThumbCache {
	if maxSize <= 0 {
		maxSize = defaultThumbCacheSize
	}
	return &ThumbCache{
		thumbs:  make(map[string]*image.NRGBA),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

func thumbKey(src image.Image, size image.Point) string {
	return fmt.Sprintf("%p@%dx%d", src, size.X, size.Y)
}

// Scaled returns src resampled to size, from the cache when possible
func (c *ThumbCache) Scaled(src image.Image, size image.Point) *image.NRGBA {
	key := thumbKey(src, size)
	if thumb := c.Get(key); thumb != nil {
		return thumb
	}
	thumb := imaging.Resample(src, size)
	c.Set(key, thumb)
	return thumb
}

// Get returns the cached thumbnail for key, or nil
func (c *ThumbCache) Get(key string) *image.NRGBA {
	if thumb, exists := c.thumbs[key]; exists {
		c.moveToEnd(key)
		return thumb
	}
	return nil
}

// Set stores a thumbnail, evicting the oldest entry when full
func (c *ThumbCache) Set(key string, thumb *image.NRGBA) {
	if _, exists := c.thumbs[key]; exists {
		c.thumbs[key] = thumb
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.thumbs[key] = thumb
	c.order = append(c.order, key)
}

// Len returns the number of cached thumbnails
func (c *ThumbCache) Len() int { return len(c.order) }

func (c *ThumbCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *ThumbCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.thumbs, oldest)
}
