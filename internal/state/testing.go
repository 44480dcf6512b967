package state

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/temoto/paystation/log2"
	"github.com/temoto/paystation/tele"
)

func NewTestContext(t testing.TB, confString string, teler tele.Teler) (context.Context, *Global) {
	var log *log2.Log
	if os.Getenv("paystation_test_log_stderr") == "1" {
		log = log2.NewStderr(log2.LDebug) // useful with panics
	} else {
		log = log2.NewTest(t, log2.LDebug)
	}
	log.SetFlags(log2.LTestFlags)
	if teler == nil {
		teler = tele.Noop{}
	}
	ctx, g := NewContext(log, teler)
	g.BuildVersion = "test"
	g.MustInit(ctx, MustReadConfig(strings.NewReader(confString), log))
	return ctx, g
}
