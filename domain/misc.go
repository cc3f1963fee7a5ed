package domain

import (
	"math/big"
	"strings"
)

var (
	Big0  = big.NewInt(0)
	Big1  = big.NewInt(1)
	Big10 = big.NewInt(10)

	// WeiPerEther is the number of base units in one display unit of currency.
	WeiPerEther = new(big.Int).Exp(Big10, big.NewInt(18), nil)
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

// IsEmpty reports whether no address is set at all. The zero address counts
// as set, use IsZero for that.
func (a Address) IsEmpty() bool {
	return len(strings.TrimSpace(string(a))) == 0 || strings.TrimSpace(string(a)) == "0x"
}

func (a Address) IsZero() bool {
	return a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type BlockNumber uint64

type TxHash string

type BlockHash string

type Table string

const (
	TableAuctions = Table("auctions")
)
