package swr

import (
	"path/filepath"

	"github.com/gogpu/swr/internal/cache"
)

// DefaultTextureCacheSize is the capacity used by NewTextureCache for
// non-positive sizes.
const DefaultTextureCacheSize = 32

// TextureCacheStats reports the occupancy and hit rate of a TextureCache.
type TextureCacheStats = cache.Stats

// TextureCache keeps recently loaded textures keyed by file path, so that
// scenes referencing the same image file share one decoded mip chain.
//
// Eviction only drops the cache's reference. Textures are never modified
// after Load returns them, so renderers may keep sampling an evicted
// texture from other goroutines; it is collected once unreferenced.
//
// TextureCache is safe for concurrent use.
type TextureCache struct {
	lru *cache.LRU[string, *Texture]
}

// NewTextureCache creates a cache holding at most size textures.
func NewTextureCache(size int) *TextureCache {
	if size <= 0 {
		size = DefaultTextureCacheSize
	}
	return &TextureCache{
		lru: cache.New[string, *Texture](size, func(path string, _ *Texture) {
			Logger().Debug("swr: texture evicted", "path", path)
		}),
	}
}

// Load returns the texture for the image file at path, decoding it and
// generating its mip chain on first use. Failed loads are not cached.
func (c *TextureCache) Load(path string) (*Texture, error) {
	key := filepath.Clean(path)
	return c.lru.GetOrLoad(key, func() (*Texture, error) {
		Logger().Debug("swr: loading texture", "path", key)
		return LoadTexture(key)
	})
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int {
	return c.lru.Len()
}

// Stats returns the cache occupancy and the hits and misses of Load since
// creation or the last Purge.
func (c *TextureCache) Stats() TextureCacheStats {
	return c.lru.Stats()
}

// Purge forgets every cached texture.
func (c *TextureCache) Purge() {
	c.lru.Purge()
}
