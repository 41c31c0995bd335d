//go:build !cachepair_cachelinesize_32 && !cachepair_cachelinesize_64 && !cachepair_cachelinesize_128 && !cachepair_cachelinesize_256 && !cachepair_nocpu

package opt

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// cpuPad is 0 on targets where the underlying CPU is not known (wasm).
const cpuPad = unsafe.Sizeof(cpu.CacheLinePad{})

// CacheLineSize_ is used in structure padding to prevent false sharing.
// It's automatically calculated using the `golang.org/x/sys` package,
// or 64 when cpuPad is 0.
const CacheLineSize_ = max(cpuPad, 64*(1-min(cpuPad, 1)))

const CacheLineSizeSource_ = "cpu"
