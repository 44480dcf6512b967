package state

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/juju/errors"
	"github.com/temoto/alive/v2"
	"github.com/temoto/paystation/currency"
	"github.com/temoto/paystation/helpers/atomic_clock"
	"github.com/temoto/paystation/internal/engine"
	"github.com/temoto/paystation/log2"
	"github.com/temoto/paystation/station"
	"github.com/temoto/paystation/tele"
)

type Global struct {
	Alive        *alive.Alive
	BuildVersion string
	Config       *Config
	Engine       *engine.Engine
	Log          *log2.Log
	Station      *station.Station
	Tele         tele.Teler

	lastActivity atomic_clock.Clock
}

const ContextKey = "run/state-global"

func GetGlobal(ctx context.Context) *Global {
	v := ctx.Value(ContextKey)
	if v == nil {
		panic(fmt.Sprintf("context['%s'] is nil", ContextKey))
	}
	if g, ok := v.(*Global); ok {
		return g
	}
	panic(fmt.Sprintf("context['%s'] expected type *Global actual=%#v", ContextKey, v))
}

func NewContext(log *log2.Log, teler tele.Teler) (context.Context, *Global) {
	if log == nil {
		panic("code error NewContext() log=nil")
	}

	g := &Global{
		Alive:        alive.NewAlive(),
		BuildVersion: "unknown",
		Engine:       engine.NewEngine(log),
		Log:          log,
		Tele:         teler,
	}
	ctx := context.Background()
	ctx = context.WithValue(ctx, log2.ContextKey, log)
	ctx = context.WithValue(ctx, ContextKey, g)
	return ctx, g
}

// If `Init` fails, consider `Global` is in broken state.
func (g *Global) Init(ctx context.Context, cfg *Config) error {
	g.Config = cfg
	if cfg.LogDebug {
		g.Log.SetLevel(log2.LDebug)
	}
	g.Log.Infof("build version=%s", g.BuildVersion)

	// Since tele is remote error reporting mechanism, it must be inited before anything else
	g.Config.Tele.BuildVersion = g.BuildVersion
	// Tele.Init gets g.Log clone before SetErrorFunc, so Tele.Log.Error doesn't recurse on itself
	if err := g.Tele.Init(ctx, g.Log.Clone(log2.LInfo), g.Config.Tele); err != nil {
		g.Tele = tele.Noop{}
		return errors.Annotate(err, "tele init")
	}
	g.Log.SetErrorFunc(g.Tele.Error)

	opt, err := cfg.StationOptions()
	if err != nil {
		return errors.Annotate(err, "station init")
	}
	opt.Log = g.Log
	if g.Station, err = station.New(opt); err != nil {
		return errors.Annotate(err, "station init")
	}
	g.Log.Infof("station coins=%v rate=%+v", g.Station.Coins(), g.Station.Rate())

	if dir := cfg.Receipt.QRDir; dir != "" {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return errors.Annotatef(err, "config: receipt.qr_dir=%s", dir)
		}
	}

	g.RegisterCommands(ctx)
	return nil
}

func (g *Global) MustInit(ctx context.Context, cfg *Config) {
	if err := g.Init(ctx, cfg); err != nil {
		g.Fatal(err)
	}
}

func (g *Global) Error(err error, args ...interface{}) {
	if err != nil {
		if len(args) != 0 {
			msg := args[0].(string)
			args = args[1:]
			err = errors.Annotatef(err, msg, args...)
		}
		g.Log.Error(err)
	}
}

func (g *Global) Fatal(err error, args ...interface{}) {
	if err != nil {
		g.Error(err, args...)
		g.StopWait(5 * time.Second)
		g.Log.Fatal(errors.ErrorStack(err))
	}
}

func (g *Global) Stop() {
	g.Alive.Stop()
}

// StopWait stops and waits for telemetry delivery. Returns false on timeout.
func (g *Global) StopWait(timeout time.Duration) bool {
	g.Stop()
	done := make(chan struct{})
	go func() {
		g.Tele.Close()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		g.Log.Errorf("stop timeout=%v", timeout)
		return false
	}
}

// Insert adds coin to current transaction, rejected coin is reported to telemetry.
func (g *Global) Insert(ctx context.Context, coin currency.Nominal) error {
	const tag = "station.insert"
	g.lastActivity.SetNow()
	if err := g.Station.AddPayment(coin); err != nil {
		if station.IsInvalidCoin(err) {
			g.Log.Infof("%s rejected coin=%d", tag, coin)
			g.Tele.Transaction(&tele.Telemetry_Transaction{
				Kind:     tele.Telemetry_Reject,
				Rejected: uint32(coin),
				Amount:   uint32(g.Station.Inserted()),
				Minutes:  uint32(g.Station.ReadDisplay()),
			})
		}
		return errors.Annotate(err, tag)
	}
	g.Log.Infof("%s coin=%s credit=%s display=%d", tag,
		currency.Amount(coin).Format100I(), g.Station.Inserted().Format100I(), g.Station.ReadDisplay())
	return nil
}

// Idle is time since last customer or operator action, zero if there was none.
func (g *Global) Idle() time.Duration { return atomic_clock.Since(&g.lastActivity) }

func (g *Global) Display(ctx context.Context) station.Minutes {
	return g.Station.ReadDisplay()
}

// Buy issues receipt and writes its QR code image when receipt.qr_dir is set.
func (g *Global) Buy(ctx context.Context) station.Receipt {
	const tag = "station.buy"
	g.lastActivity.SetNow()
	amount := g.Station.Inserted()
	r := g.Station.Buy()
	g.Log.Infof("%s receipt %s amount=%s", tag, r.String(), amount.Format100I())
	g.Tele.Transaction(&tele.Telemetry_Transaction{
		Kind:      tele.Telemetry_Buy,
		Amount:    uint32(amount),
		Minutes:   uint32(r.Value()),
		ReceiptId: r.ID(),
	})
	if dir := g.Config.Receipt.QRDir; dir != "" {
		if err := g.writeReceiptQR(dir, r); err != nil {
			g.Error(err, tag)
		}
	}
	return r
}

func (g *Global) Cancel(ctx context.Context) map[currency.Nominal]uint {
	const tag = "station.cancel"
	g.lastActivity.SetNow()
	minutes := g.Station.ReadDisplay()
	refund := g.Station.Cancel()
	tx := &tele.Telemetry_Transaction{
		Kind:    tele.Telemetry_Cancel,
		Minutes: uint32(minutes),
		Coins:   make([]*tele.Telemetry_Coin, 0, len(refund)),
	}
	total := currency.Amount(0)
	for _, n := range g.Station.Coins() {
		if c, ok := refund[n]; ok {
			tx.Coins = append(tx.Coins, &tele.Telemetry_Coin{Nominal: uint32(n), Count: uint32(c)})
			total += currency.Amount(n) * currency.Amount(c)
		}
	}
	tx.Amount = uint32(total)
	g.Log.Infof("%s refund=%v total=%s", tag, refund, total.Format100I())
	g.Tele.Transaction(tx)
	return refund
}

// Collect is operator till collection.
func (g *Global) Collect(ctx context.Context) currency.Amount {
	const tag = "station.collect"
	g.lastActivity.SetNow()
	amount := g.Station.Empty()
	g.Log.Infof("%s amount=%s", tag, amount.Format100I())
	g.Tele.Transaction(&tele.Telemetry_Transaction{
		Kind:   tele.Telemetry_Collect,
		Amount: uint32(amount),
	})
	return amount
}

func (g *Global) writeReceiptQR(dir string, r station.Receipt) error {
	png, err := r.QRCode(g.Config.Receipt.QRSize)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, r.ID()+".png")
	if err = ioutil.WriteFile(path, png, 0o644); err != nil {
		return errors.Annotatef(err, "receipt qr path=%s", path)
	}
	g.Log.Debugf("receipt qr written path=%s", path)
	return nil
}
