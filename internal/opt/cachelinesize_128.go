//go:build cachepair_cachelinesize_128

package opt

// CacheLineSize_ is forced to 128 bytes via the cachepair_cachelinesize_128 build tag.
// Use: go build -tags=cachepair_cachelinesize_128
const CacheLineSize_ uintptr = 128

const CacheLineSizeSource_ = "tag"
