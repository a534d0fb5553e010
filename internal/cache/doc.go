// Package cache provides the small LRU cache used to memoise font
// resolutions.
//
//	c := cache.New[key, text.FontDescriptor](256)
//	desc := c.GetOrCreate(k, func() text.FontDescriptor { return resolve(k) })
//
// Cache is safe for concurrent use. The create callback of GetOrCreate runs
// under the cache lock, so a key is never resolved twice concurrently.
package cache
