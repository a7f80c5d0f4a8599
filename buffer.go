package unzstd

import (
	"fmt"
	"math"
)

// reserveOutput extends buf with capacity for exactly n more bytes.
// Requests the host cannot satisfy (declared sizes or output limits in the
// exabyte range) come back as ErrOutputAlloc instead of a makeslice panic.
// The capacity is exact so that cap-limited decoding enforces the output
// budget to the byte.
func reserveOutput(buf []byte, n uint64) (out []byte, err error) {
	if n > uint64(math.MaxInt)-uint64(len(buf)) {
		return nil, fmt.Errorf("%w: %d bytes", ErrOutputAlloc, n)
	}
	if uint64(cap(buf)-len(buf)) >= n {
		return buf, nil
	}

	defer func() {
		if recover() != nil {
			out, err = nil, fmt.Errorf("%w: %d bytes", ErrOutputAlloc, n)
		}
	}()

	out = make([]byte, len(buf), len(buf)+int(n))
	copy(out, buf)

	return out, nil
}
