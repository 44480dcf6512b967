package atomic_clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApi(t *testing.T) {
	t.Parallel()
	const delta = 100 * time.Millisecond

	c := Now()
	tim := time.Now()
	assert.InDelta(t, tim.UnixNano(), c.UnixNano(), float64(delta))
	assert.InDelta(t, tim.UnixNano(), c.Time().UnixNano(), float64(delta))
	assert.True(t, Since(c) < delta)

	c.Reset()
	assert.True(t, c.IsZero())
	assert.Equal(t, time.Duration(0), Since(c))

	var zero Clock
	zero.SetNow()
	assert.False(t, zero.IsZero())
}
