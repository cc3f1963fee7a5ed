// Package mechanism holds the closed registry of the seven auction
// mechanisms: for each one the contract it maps to, the abi used for reads,
// writes and construction, and how bids enter the contract. The registry is
// fixed at compile time, a missing case is a bug, not an extension point.
package mechanism

import (
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"

	baseabi "github.com/auctionx/goapi/base/abi"
	"github.com/auctionx/goapi/domain/auction"
)

// Descriptor is the immutable per-mechanism entry.
type Descriptor struct {
	Type auction.Type

	// ContractName is the artifact lookup key, e.g. "DutchAuction".
	ContractName string

	ABI ethabi.ABI

	// BidMethod is the state-mutating entry point for bids or orders.
	BidMethod string

	// Payable reports whether the bid amount travels as transaction value.
	// Hold-to-compete moves token amounts by argument instead.
	Payable bool

	// RequiresToken marks mechanisms that cannot be constructed without a
	// fungible token address; an auxiliary token is deployed when the record
	// has none.
	RequiresToken bool
}

var registry = map[auction.Type]*Descriptor{
	auction.TypeDutch: {
		Type:         auction.TypeDutch,
		ContractName: "DutchAuction",
		ABI:          baseabi.DutchAuctionABI,
		BidMethod:    "buy",
		Payable:      true,
	},
	auction.TypeEnglish: {
		Type:         auction.TypeEnglish,
		ContractName: "EnglishAuction",
		ABI:          baseabi.EnglishAuctionABI,
		BidMethod:    "bid",
		Payable:      true,
	},
	auction.TypeSealedBid: {
		Type:         auction.TypeSealedBid,
		ContractName: "SealedBidAuction",
		ABI:          baseabi.SealedBidAuctionABI,
		BidMethod:    "bid",
		Payable:      true,
	},
	auction.TypeHoldToCompete: {
		Type:          auction.TypeHoldToCompete,
		ContractName:  "HoldToCompeteAuction",
		ABI:           baseabi.HoldToCompeteAuctionABI,
		BidMethod:     "placeBid",
		RequiresToken: true,
	},
	auction.TypePlayable: {
		Type:         auction.TypePlayable,
		ContractName: "PlayableAuction",
		ABI:          baseabi.PlayableAuctionABI,
		BidMethod:    "placeBid",
		Payable:      true,
	},
	auction.TypeRandomSelection: {
		Type:         auction.TypeRandomSelection,
		ContractName: "RandomSelectionAuction",
		ABI:          baseabi.RandomSelectionAuctionABI,
		BidMethod:    "placeBid",
		Payable:      true,
	},
	auction.TypeOrderBook: {
		Type:         auction.TypeOrderBook,
		ContractName: "OrderBookAuction",
		ABI:          baseabi.OrderBookAuctionABI,
		BidMethod:    "placeBuyOrder",
		Payable:      true,
	},
}

func Get(t auction.Type) (*Descriptor, bool) {
	d, ok := registry[t]
	return d, ok
}

// TokenContractName is the artifact key of the auxiliary mintable token.
const TokenContractName = "MintableToken"
