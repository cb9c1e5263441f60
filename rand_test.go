package skiplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomHeightBounds(t *testing.T) {
	for i := 0; i < 10000; i++ {
		h := randomHeight()
		assert.GreaterOrEqual(t, int(h), 1)
		assert.LessOrEqual(t, int(h), MaxHeight)
	}
}

func TestRandomHeightDistributionSkewsLow(t *testing.T) {
	const trials = 20000
	counts := make(map[uint8]int)
	for i := 0; i < trials; i++ {
		counts[randomHeight()]++
	}

	// A geometric(1/2) draw should land on height 1 roughly half the
	// time; this is a loose sanity check, not an exact distribution
	// test, to avoid a flaky assertion on an inherently random value.
	assert.Greater(t, counts[1], trials/4, "height 1 should occur in well over a quarter of draws")
}
