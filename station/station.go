// Package station implements parking pay station transaction.
// Overview:
// - caller inserts coins, station accumulates amount and parking time
// - Buy: receipt for bought time, transaction reset
// - Cancel: inserted coins to return, transaction reset
// - Empty: operator collects accumulated amount, transaction reset
//
// Station is single owner state, no locking inside.
// Each kiosk must use own Station instance.
package station

import (
	"fmt"

	"github.com/juju/errors"
	"github.com/temoto/paystation/currency"
	"github.com/temoto/paystation/log2"
)

var DefaultCoins = []currency.Nominal{5, 10, 25}

type State uint8

const (
	StateIdle State = iota
	StateAccumulating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAccumulating:
		return "accumulating"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

type Options struct {
	Coins []currency.Nominal // default DefaultCoins
	Rate  Rate               // default DefaultRate
	Log   *log2.Log          // optional
}

type Station struct {
	log  *log2.Log
	rate Rate

	insertedSoFar currency.Amount
	timeBought    Minutes
	coins         currency.NominalGroup
}

func New(opt Options) (*Station, error) {
	coins := opt.Coins
	if len(coins) == 0 {
		coins = DefaultCoins
	}
	for _, n := range coins {
		if n == 0 {
			return nil, errors.NotValidf("station coin=0")
		}
	}
	rate := opt.Rate
	if rate == (Rate{}) {
		rate = DefaultRate
	}
	if err := rate.Validate(); err != nil {
		return nil, errors.Annotate(err, "station")
	}

	self := &Station{log: opt.Log, rate: rate}
	self.coins.SetValid(coins)
	return self, nil
}

// NewDefault returns station accepting 5, 10, 25 cents at 2 minutes per 5 cents.
func NewDefault() *Station {
	self, err := New(Options{})
	if err != nil {
		panic("code error station.NewDefault err=" + err.Error())
	}
	return self
}

func (self *Station) AddPayment(coin currency.Nominal) error {
	if !self.coins.Valid(coin) {
		self.log.Debugf("station reject coin=%d", coin)
		return &InvalidCoinError{Coin: coin}
	}
	if err := self.coins.Add(coin, 1); err != nil {
		return errors.Trace(err)
	}
	self.insertedSoFar += currency.Amount(coin)
	self.timeBought = self.rate.Convert(self.insertedSoFar)
	self.log.Debugf("station coin=%d inserted=%d time=%d", coin, self.insertedSoFar, self.timeBought)
	return nil
}

func (self *Station) ReadDisplay() Minutes { return self.timeBought }

func (self *Station) Buy() Receipt {
	r := newReceipt(self.timeBought)
	self.log.Debugf("station buy receipt=%s", r.String())
	self.reset()
	return r
}

// Cancel returns coins inserted since last reset. Result is caller owned.
func (self *Station) Cancel() map[currency.Nominal]uint {
	refund := self.coins.ToMap()
	self.log.Debugf("station cancel coins=%s", self.coins.String())
	self.reset()
	return refund
}

// Empty returns amount inserted since last reset.
func (self *Station) Empty() currency.Amount {
	total := self.insertedSoFar
	self.log.Debugf("station empty total=%d", total)
	self.reset()
	return total
}

func (self *Station) Inserted() currency.Amount { return self.insertedSoFar }
func (self *Station) Coins() []currency.Nominal { return self.coins.Nominals() }
func (self *Station) Rate() Rate                { return self.rate }

func (self *Station) State() State {
	if self.insertedSoFar == 0 {
		return StateIdle
	}
	return StateAccumulating
}

func (self *Station) String() string {
	return fmt.Sprintf("station state=%s inserted=%d time=%d coins=%s",
		self.State(), self.insertedSoFar, self.timeBought, self.coins.String())
}

func (self *Station) reset() {
	self.insertedSoFar = 0
	self.timeBought = 0
	self.coins.Clear()
}
