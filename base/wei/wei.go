// Package wei converts between human-entered decimal price strings and
// base-unit big integers. Conversion goes through shopspring decimal, never
// through float, so currency amounts cannot pick up rounding error.
package wei

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

const etherDecimals = 18

// Parse converts a decimal string in display units ("1.5") to base units.
// A plain integer string is treated as display units as well; callers that
// already hold base units should not round-trip through strings.
func Parse(value string) (*big.Int, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return nil, xerrors.New("empty amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, xerrors.Errorf("parse amount %q: %w", value, err)
	}
	if d.Sign() < 0 {
		return nil, xerrors.Errorf("negative amount %q", value)
	}
	shifted := d.Shift(etherDecimals)
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, xerrors.Errorf("amount %q has more than %d decimals", value, etherDecimals)
	}
	return shifted.BigInt(), nil
}

// ParseOrDefault parses value, falling back to def (display units) when the
// field is unset.
func ParseOrDefault(value, def string) (*big.Int, error) {
	if strings.TrimSpace(value) == "" {
		value = def
	}
	return Parse(value)
}

// ParseBaseUnits parses an integer base-unit string, e.g. an amount a client
// already converted to wei.
func ParseBaseUnits(value string) (*big.Int, error) {
	s := strings.TrimSpace(value)
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, xerrors.Errorf("parse base units %q", value)
	}
	if v.Sign() < 0 {
		return nil, xerrors.Errorf("negative amount %q", value)
	}
	return v, nil
}

// Format renders base units as a display-unit decimal string.
func Format(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return decimal.NewFromBigInt(v, -etherDecimals).String()
}
