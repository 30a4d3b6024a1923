// Package cache provides a generic, thread-safe LRU cache.
//
// The cache holds at most its configured capacity; inserting beyond it
// evicts the least recently used entry. Get marks an entry as recently
// used.
//
//	c := cache.NewLRUCache[string, int](100)
//	c.Put("a", 1)
//	if v, ok := c.Get("a"); ok {
//	    // use v
//	}
package cache
