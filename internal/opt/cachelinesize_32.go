//go:build cachepair_cachelinesize_32

package opt

// CacheLineSize_ is forced to 32 bytes via the cachepair_cachelinesize_32 build tag.
// Use: go build -tags=cachepair_cachelinesize_32
const CacheLineSize_ uintptr = 32

const CacheLineSizeSource_ = "tag"
