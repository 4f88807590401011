// Package cache provides a generic, thread-safe LRU cache.
//
//	c := cache.New[string, *texture.Texture](32, func(path string, _ *texture.Texture) {
//	    log.Printf("evicted %s", path)
//	})
//	tex, err := c.GetOrLoad(path, func() (*texture.Texture, error) {
//	    return texture.Load(path)
//	})
//
// # Thread Safety
//
// LRU is safe for concurrent use. It must not be copied after creation
// (it contains a mutex).
package cache
