package auction

import (
	"math/big"

	"github.com/auctionx/goapi/domain/orderbook"
)

// BidProposal is a proposed bid or order, alive only for the duration of one
// validation and submission call. Amounts are unsigned base-unit integers.
type BidProposal struct {
	// Amount is the bid value in base units. For order-book auctions it is
	// the locked value and is derived from the order instead when nil.
	Amount *big.Int

	// BlindedBid is the keccak digest submitted during the sealed-bid commit
	// phase. Hex string, 32 bytes.
	BlindedBid string

	// Deposit accompanies a sealed bid so the commit does not reveal the
	// real amount.
	Deposit *big.Int

	// Order is set for order-book auctions.
	Order *orderbook.Order
}

type RejectReason string

const (
	RejectAuctionEnded          = RejectReason("AUCTION_ENDED")
	RejectBiddingWindowClosed   = RejectReason("BIDDING_WINDOW_CLOSED")
	RejectBelowMinimum          = RejectReason("BELOW_MINIMUM")
	RejectNotHigherThanCurrent  = RejectReason("NOT_HIGHER_THAN_CURRENT")
	RejectMisconfiguredContract = RejectReason("MISCONFIGURED_CONTRACT")
	RejectLedgerUnavailable     = RejectReason("LEDGER_UNAVAILABLE")
)

// ValidationResult is the only outcome type the validator produces. Either
// Valid is true, or Reason carries exactly one rejection cause. There is no
// partial state.
type ValidationResult struct {
	Valid  bool         `json:"valid"`
	Reason RejectReason `json:"reason,omitempty"`
	Detail string       `json:"error,omitempty"`

	// OffChain marks an acceptance that was granted because the auction has
	// no deployed contract yet. Callers must treat it as lower trust: the
	// ledger never saw the bid.
	OffChain bool `json:"offChain,omitempty"`
}

func Accepted() *ValidationResult {
	return &ValidationResult{Valid: true}
}

func AcceptedOffChain() *ValidationResult {
	return &ValidationResult{Valid: true, OffChain: true}
}

func Rejected(reason RejectReason, detail string) *ValidationResult {
	return &ValidationResult{Valid: false, Reason: reason, Detail: detail}
}
