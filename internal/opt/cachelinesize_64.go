//go:build cachepair_cachelinesize_64

package opt

// CacheLineSize_ is forced to 64 bytes via the cachepair_cachelinesize_64 build tag.
// Use: go build -tags=cachepair_cachelinesize_64
const CacheLineSize_ uintptr = 64

const CacheLineSizeSource_ = "tag"
