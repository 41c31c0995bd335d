//go:build cachepair_cachelinesize_256

package opt

// CacheLineSize_ is forced to 256 bytes via the cachepair_cachelinesize_256 build tag.
// Use: go build -tags=cachepair_cachelinesize_256
const CacheLineSize_ uintptr = 256

const CacheLineSizeSource_ = "tag"
