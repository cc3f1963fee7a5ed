// Package orderbook models the economic contract the on-chain order-book
// auction implements: buy orders lock price*quantity at submission, sell
// orders lock quantity of the traded asset, and at auction end a single
// clearing price settles every buy at or above it against every sell at or
// below it. Matching itself runs on the ledger; this package validates order
// shape, reproduces the locked-value formula bit for bit, and provides a
// reference clearing-price computation for reconciliation and tests.
package orderbook

import (
	"math/big"
	"sort"

	"golang.org/x/xerrors"
)

type Side string

const (
	SideBuy  = Side("buy")
	SideSell = Side("sell")
)

func (s Side) IsValid() bool {
	return s == SideBuy || s == SideSell
}

var (
	ErrInvalidSide     = xerrors.New("order side must be buy or sell")
	ErrInvalidPrice    = xerrors.New("order price must be positive")
	ErrInvalidQuantity = xerrors.New("order quantity must be positive")
	ErrValueMismatch   = xerrors.New("locked value must equal price * quantity")
)

// Order is a limit order. Price is in base units per asset unit, Quantity in
// asset units. Both are unsigned big integers, never floats.
type Order struct {
	Side     Side     `json:"side"`
	Price    *big.Int `json:"-"`
	Quantity *big.Int `json:"-"`
}

func (o *Order) Validate() error {
	if !o.Side.IsValid() {
		return ErrInvalidSide
	}
	if o.Price == nil || o.Price.Sign() <= 0 {
		return ErrInvalidPrice
	}
	if o.Quantity == nil || o.Quantity.Sign() <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// LockedValue is the exact amount a buy order locks at submission. The
// contract computes the same product, so any deviation here would make the
// submission revert or, worse, lock the wrong amount.
func LockedValue(price, quantity *big.Int) *big.Int {
	return new(big.Int).Mul(price, quantity)
}

// CheckLockedValue verifies a caller-supplied value against the formula.
// Only buy orders lock value, a sell order must not carry any.
func CheckLockedValue(o *Order, value *big.Int) error {
	if o.Side == SideSell {
		if value != nil && value.Sign() != 0 {
			return ErrValueMismatch
		}
		return nil
	}
	if value == nil || value.Cmp(LockedValue(o.Price, o.Quantity)) != 0 {
		return ErrValueMismatch
	}
	return nil
}

// ClearingPrice is the reference computation of the settlement price the
// ledger derives at auction end: the price maximising matched volume, where
// demand counts buys with limit >= p and supply counts sells with limit <= p.
// Ties resolve to the lowest such price. Returns false when no price crosses.
func ClearingPrice(orders []Order) (*big.Int, bool) {
	var buys, sells []Order
	for _, o := range orders {
		if o.Validate() != nil {
			continue
		}
		if o.Side == SideBuy {
			buys = append(buys, o)
		} else {
			sells = append(sells, o)
		}
	}
	if len(buys) == 0 || len(sells) == 0 {
		return nil, false
	}

	seen := map[string]bool{}
	var candidates []*big.Int
	for _, o := range append(buys, sells...) {
		k := o.Price.String()
		if !seen[k] {
			seen[k] = true
			candidates = append(candidates, o.Price)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Cmp(candidates[j]) < 0
	})

	var best *big.Int
	bestVolume := new(big.Int)
	for _, p := range candidates {
		demand := new(big.Int)
		for _, b := range buys {
			if b.Price.Cmp(p) >= 0 {
				demand.Add(demand, b.Quantity)
			}
		}
		supply := new(big.Int)
		for _, s := range sells {
			if s.Price.Cmp(p) <= 0 {
				supply.Add(supply, s.Quantity)
			}
		}
		volume := demand
		if supply.Cmp(demand) < 0 {
			volume = supply
		}
		// strictly greater keeps the lowest price on ties
		if volume.Sign() > 0 && volume.Cmp(bestVolume) > 0 {
			bestVolume = new(big.Int).Set(volume)
			best = new(big.Int).Set(p)
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}
