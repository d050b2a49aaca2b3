package maker

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNoReferencePrice reports a missing or non-positive best bid. The
// valuation divides by it, so it is surfaced instead of producing a
// nonsense value.
var ErrNoReferencePrice = errors.New("maker: reference bid price must be positive")

// Value expresses a two-asset position in amount-asset units: the amount
// balance plus the price balance converted at the reference bid.
func Value(amountBal, priceBal, refBid decimal.Decimal) (decimal.Decimal, error) {
	if refBid.Sign() <= 0 {
		return decimal.Zero, ErrNoReferencePrice
	}
	return amountBal.Add(priceBal.Div(refBid)), nil
}
