package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/paystation/currency"
	"github.com/temoto/paystation/internal/engine"
	"github.com/temoto/paystation/internal/state"
	"github.com/temoto/paystation/log2"
	"github.com/temoto/paystation/station"
)

func TestParseLine(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		line      string
		inserted  currency.Amount
		expectErr string
	}{
		{"empty", "  ", 0, ""},
		{"coins", "5 10 25", 40, ""},
		{"coin=N", "coin=10 coin=25", 35, ""},
		{"loop", "loop=3 10", 30, ""},
		{"buy", "25 display buy", 0, ""},
		{"cancel", "5 cancel 10", 10, ""},
		{"multiple-loop", "loop=2 loop=3 5", 0, "multiple loop commands, expected at most one"},
		{"unknown", "5 refund", 0, "word=refund: action=refund not resolved"},
		{"coin-garbage", "coin=x", 0, `word=coin=x: strconv.ParseUint: parsing "x": invalid syntax`},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			ctx, g := state.NewTestContext(t, "", nil)
			d, err := parseLine(ctx, c.line)
			if c.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), c.expectErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, g.Engine.Exec(ctx, d))
			assert.Equal(t, c.inserted, g.Station.Inserted())
		})
	}
}

func TestParseLineInvalidCoin(t *testing.T) {
	t.Parallel()

	ctx, g := state.NewTestContext(t, "", nil)
	d, err := parseLine(ctx, "10 17 25")
	require.NoError(t, err)
	err = g.Engine.Exec(ctx, d)
	require.Error(t, err)
	assert.True(t, station.IsInvalidCoin(err))
	assert.Equal(t, currency.Amount(10), g.Station.Inserted(), "sequence stops at invalid coin")
}

func TestParseLineMeta(t *testing.T) {
	t.Parallel()

	ctx, g := state.NewTestContext(t, "", nil)
	d, err := parseLine(ctx, "5 help 10")
	require.NoError(t, err)
	assert.Equal(t, "help", d.String())

	d, err = parseLine(ctx, "log=no")
	require.NoError(t, err)
	require.NoError(t, g.Engine.Exec(ctx, d))
	assert.False(t, g.Log.Enabled(log2.LDebug))
	d, err = parseLine(ctx, "log=yes")
	require.NoError(t, err)
	require.NoError(t, g.Engine.Exec(ctx, d))
	assert.True(t, g.Log.Enabled(log2.LDebug))

	d, err = parseLine(ctx, "")
	require.NoError(t, err)
	assert.IsType(t, engine.Nothing{}, d)
}
