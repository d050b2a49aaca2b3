// Package asset holds the small value types for a trading pair: an asset
// id with its decimal precision, and conversions between whole-unit
// decimals and smallest-unit integers.
package asset

import "github.com/shopspring/decimal"

// Asset identifies one leg of a pair. ID is the base58 asset id as the
// node and matcher know it; empty means WAVES.
type Asset struct {
	ID       string
	Name     string
	Decimals int32
}

// Waves is the chain's native asset.
func Waves() Asset {
	return Asset{Name: "WAVES", Decimals: 8}
}

// FromUnits converts a smallest-unit quantity to a whole-unit decimal.
func (a Asset) FromUnits(units int64) decimal.Decimal {
	return decimal.New(units, -a.Decimals)
}

// ToUnits converts a whole-unit decimal to smallest units. Truncation is
// floor, never rounding: whether a computed amount clears the minimum
// order floor depends on it.
func (a Asset) ToUnits(d decimal.Decimal) int64 {
	return d.Shift(a.Decimals).Floor().IntPart()
}

// Pair is the traded market: quantities in Amount units, prices in Price
// units per Amount unit.
type Pair struct {
	Amount Asset
	Price  Asset
}

// String renders the pair for logs and notifications.
func (p Pair) String() string {
	return p.Amount.Name + "/" + p.Price.Name
}
