// Package opt holds build-time options.
//
// CacheLineSize_ is the cache-line size used for padding. CacheLineSizeSource_
// is diagnostic only and names where that value came from: "cpu" for
// golang.org/x/sys/cpu, "tag" for a cachepair_cachelinesize_N build tag, or
// "fallback" for cachepair_nocpu.
package opt
