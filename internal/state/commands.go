package state

import (
	"context"
	"time"

	"github.com/temoto/paystation/currency"
	"github.com/temoto/paystation/internal/engine"
)

// RegisterCommands binds station operations to engine actions:
// coin(N) display buy cancel empty status
func (g *Global) RegisterCommands(ctx context.Context) {
	g.Engine.RegisterNewFuncArg("coin", func(ctx context.Context, arg engine.Arg) error {
		return g.Insert(ctx, currency.Nominal(arg))
	})
	g.Engine.RegisterNewFunc("display", func(ctx context.Context) error {
		g.Log.Infof("display %d min", g.Display(ctx))
		return nil
	})
	g.Engine.RegisterNewFunc("buy", func(ctx context.Context) error {
		g.Buy(ctx)
		return nil
	})
	g.Engine.RegisterNewFunc("cancel", func(ctx context.Context) error {
		g.Cancel(ctx)
		return nil
	})
	g.Engine.RegisterNewFunc("empty", func(ctx context.Context) error {
		g.Collect(ctx)
		return nil
	})
	g.Engine.RegisterNewFunc("status", func(ctx context.Context) error {
		g.Log.Infof("%s idle=%v", g.Station.String(), g.Idle().Truncate(time.Second))
		return nil
	})
}
