//go:build cachepair_nocpu && !cachepair_cachelinesize_32 && !cachepair_cachelinesize_64 && !cachepair_cachelinesize_128 && !cachepair_cachelinesize_256

package opt

// CacheLineSize_ falls back to 64 bytes when the platform facility is
// disabled via the cachepair_nocpu build tag.
// Use: go build -tags=cachepair_nocpu
const CacheLineSize_ uintptr = 64

const CacheLineSizeSource_ = "fallback"
