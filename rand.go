package skiplist

import (
	"math/bits"
	"math/rand/v2"
)

// randomHeight draws a node height with a geometric(1/2) distribution,
// clamped to [1, MaxHeight]. ORing in the top bit guarantees the value
// passed to TrailingZeros32 is never zero, so the result is always
// well defined without a branch for the all-zero case.
//
// rand/v2's package-level generator is seeded from the OS CSPRNG and,
// unlike math/rand's legacy global source, is not guarded by a single
// mutex shared across every goroutine - exactly the "thread-local or
// otherwise contention-free" source the height draw needs under
// concurrent insert.
func randomHeight() uint8 {
	r := rand.Uint32() | (1 << (MaxHeight - 1))
	return uint8(1 + bits.TrailingZeros32(r))
}
