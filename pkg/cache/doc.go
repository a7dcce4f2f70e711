// Package cache provides a generic fixed-capacity LRU cache.
//
// The interactive shell compiles a candidate pattern every time the
// custom-rule form changes; caching compiled patterns by source keeps that
// loop cheap while bounding memory. The cache itself is general purpose:
// any comparable key and any value type work.
//
//	patterns := cache.NewLRU[string, *validator.Pattern](64)
//	if p, ok := patterns.Get(src); ok {
//	    // reuse the compiled pattern
//	}
//
// All operations are O(1) and safe for concurrent use.
package cache
