package station

import (
	"github.com/juju/errors"
	"github.com/temoto/paystation/currency"
)

// Minutes of parking time.
type Minutes uint32

// Rate buys Minutes for each whole Cents, remainder buys nothing.
type Rate struct {
	Cents   currency.Amount
	Minutes Minutes
}

var DefaultRate = Rate{Cents: 5, Minutes: 2}

func (r Rate) Validate() error {
	if r.Cents == 0 {
		return errors.NotValidf("rate cents=0")
	}
	return nil
}

func (r Rate) Convert(a currency.Amount) Minutes {
	return Minutes(uint32(a/r.Cents) * uint32(r.Minutes))
}
