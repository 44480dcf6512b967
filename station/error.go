package station

import (
	"fmt"

	"github.com/juju/errors"
	"github.com/temoto/paystation/currency"
)

type InvalidCoinError struct {
	Coin currency.Nominal
}

func (e *InvalidCoinError) Error() string { return fmt.Sprintf("Invalid coin: %d", e.Coin) }

// IsInvalidCoin reports whether err, possibly annotated, is *InvalidCoinError.
func IsInvalidCoin(err error) bool {
	_, ok := errors.Cause(err).(*InvalidCoinError)
	return ok
}
