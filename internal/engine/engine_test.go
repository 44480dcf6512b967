package engine

import (
	"context"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/paystation/log2"
)

func newTestEngine(t testing.TB) *Engine {
	return NewEngine(log2.NewTest(t, log2.LDebug))
}

func TestResolve(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	e.Register("buy", Nothing{Name: "buy"})
	e.RegisterNewFuncArg("coin", func(context.Context, Arg) error { return nil })

	d, err := e.Resolve("buy")
	require.NoError(t, err)
	assert.Equal(t, "buy", d.String())

	d, err = e.Resolve("coin(25)")
	require.NoError(t, err)
	assert.Equal(t, "coin(25)", d.String())
	assert.NoError(t, d.Validate())

	for _, s := range []string{"sandwich", "coin", "coin(x)", "bake(5)"} {
		_, err = e.Resolve(s)
		assert.True(t, IsNotResolved(err), "action=%s err=%v", s, err)
	}
	_, err = e.Resolve("coin(99999999999)")
	assert.Error(t, err)
	assert.False(t, IsNotResolved(nil))
	assert.Equal(t, []string{"buy", "coin(?)"}, e.List())
}

func TestFuncArg(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	got := Arg(0)
	fa := FuncArg{Name: "coin", F: func(_ context.Context, a Arg) error { got = a; return nil }}
	assert.Equal(t, ErrArgNotApplied, errors.Cause(fa.Do(ctx)))
	assert.Equal(t, "coin(?)", fa.String())

	d, err := fa.Apply(10)
	require.NoError(t, err)
	require.NoError(t, d.Do(ctx))
	assert.Equal(t, Arg(10), got)

	_, err = d.(ArgApplier).Apply(5)
	assert.Equal(t, ErrArgOverwrite, errors.Cause(err))
}

func TestParseExec(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newTestEngine(t)
	log := []string{}
	e.RegisterNewFunc("display", func(context.Context) error { log = append(log, "display"); return nil })
	e.RegisterNewFuncArg("coin", func(_ context.Context, a Arg) error {
		if a == 17 {
			return errors.Errorf("bad coin")
		}
		log = append(log, "coin")
		return nil
	})

	seq, err := e.ParseText("line", "  coin(5) display\tcoin(10) ")
	require.NoError(t, err)
	assert.Equal(t, 3, seq.Len())
	require.NoError(t, e.Exec(ctx, seq))
	assert.Equal(t, []string{"coin", "display", "coin"}, log)

	log = log[:0]
	seq, err = e.ParseText("line", "coin(17) display")
	require.NoError(t, err)
	err = e.Exec(ctx, seq)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad coin")
	assert.Empty(t, log, "error must abort sequence")

	_, err = e.ParseText("line", "display nope")
	assert.True(t, IsNotResolved(err))

	log = log[:0]
	require.NoError(t, e.Exec(ctx, RepeatN{N: 3, D: seqOf(t, e, "display")}))
	assert.Equal(t, 3, len(log))

	fail := Fail{E: errors.New("broken")}
	assert.Error(t, e.Exec(ctx, NewSeq("v").Append(fail)))
}

func seqOf(t testing.TB, e *Engine, text string) *Seq {
	seq, err := e.ParseText(text, text)
	require.NoError(t, err)
	return seq
}
