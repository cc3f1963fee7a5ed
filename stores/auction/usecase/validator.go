package usecase

import (
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/xerrors"

	bCtx "github.com/auctionx/goapi/base/ctx"
	"github.com/auctionx/goapi/base/log"
	"github.com/auctionx/goapi/base/wei"
	"github.com/auctionx/goapi/domain"
	"github.com/auctionx/goapi/domain/auction"
	"github.com/auctionx/goapi/domain/orderbook"
)

type ValidatorCfg struct {
	// MinIncrement is the amount a bid must exceed the current highest bid
	// by on mechanisms with strict outbidding (English, Hold-to-Compete,
	// Playable). Zero keeps the contract's own strictly-greater rule.
	MinIncrement *big.Int
}

// validatorImpl decides whether a proposed bid may be forwarded to the
// chain. The contract enforces the same rules again and stays the final
// arbiter; rejecting here saves the bidder a doomed transaction and its gas.
type validatorImpl struct {
	reader       auction.StateReader
	minIncrement *big.Int
}

func NewValidator(reader auction.StateReader, cfg *ValidatorCfg) auction.Validator {
	minIncrement := domain.Big0
	if cfg != nil && cfg.MinIncrement != nil {
		minIncrement = cfg.MinIncrement
	}
	return &validatorImpl{reader: reader, minIncrement: minIncrement}
}

func (im *validatorImpl) ValidateBid(ctx bCtx.Ctx, rec *auction.Auction, proposal *auction.BidProposal) (*auction.ValidationResult, error) {
	if rec == nil || proposal == nil {
		return nil, domain.ErrBadParamInput
	}

	// shape checks happen before any network call
	if res, err := fastReject(rec.Type, proposal); res != nil || err != nil {
		return res, err
	}

	// not deployed yet: nothing on chain to validate against. Accepted, but
	// flagged so callers treat it as the lower-trust off-chain mode.
	if rec.ContractAddress.IsEmpty() {
		return auction.AcceptedOffChain(), nil
	}

	state, err := im.reader.Read(ctx, rec.ChainId, rec.ContractAddress, rec.Type)
	if err != nil {
		// a failed read must never default to acceptance
		if errors.Is(err, domain.ErrLedgerUnavailable) {
			return auction.Rejected(auction.RejectLedgerUnavailable, "could not read auction state from ledger"), nil
		}
		if errors.Is(err, domain.ErrAbiUnavailable) {
			return auction.Rejected(auction.RejectMisconfiguredContract, "auction contract interface is not registered"), nil
		}
		ctx.WithFields(log.Fields{
			"auctionId": rec.Id,
			"err":       err,
		}).Error("failed to read state for validation")
		return nil, err
	}

	return im.applyRules(rec.Type, state, proposal)
}

// fastReject handles everything decidable without the ledger: non-positive
// amounts and malformed order-book orders.
func fastReject(typ auction.Type, proposal *auction.BidProposal) (*auction.ValidationResult, error) {
	switch typ {
	case auction.TypeSealedBid:
		// the real amount is hidden until reveal, only the deposit travels
		if proposal.Deposit != nil && proposal.Deposit.Sign() < 0 {
			return auction.Rejected(auction.RejectBelowMinimum, "deposit must not be negative"), nil
		}
		return nil, nil

	case auction.TypeOrderBook:
		if proposal.Order == nil {
			return nil, xerrors.Errorf("%w: order book bid requires an order", domain.ErrBadParamInput)
		}
		if err := proposal.Order.Validate(); err != nil {
			return nil, xerrors.Errorf("%w: %v", domain.ErrBadParamInput, err)
		}
		if proposal.Amount != nil {
			if err := orderbook.CheckLockedValue(proposal.Order, proposal.Amount); err != nil {
				return nil, xerrors.Errorf("%w: %v", domain.ErrBadParamInput, err)
			}
		}
		return nil, nil

	default:
		if proposal.Amount == nil || proposal.Amount.Sign() <= 0 {
			return auction.Rejected(auction.RejectBelowMinimum, "bid amount must be positive"), nil
		}
		return nil, nil
	}
}

func (im *validatorImpl) applyRules(typ auction.Type, state *auction.State, proposal *auction.BidProposal) (*auction.ValidationResult, error) {
	now := state.BlockTime
	amount := proposal.Amount

	switch typ {
	case auction.TypeDutch:
		s := state.Dutch
		if s.Ended {
			return auction.Rejected(auction.RejectAuctionEnded, "auction has ended"), nil
		}
		if amount.Cmp(s.CurrentPrice) < 0 {
			detail := fmt.Sprintf("bid must be at least current price (%s)", wei.Format(s.CurrentPrice))
			return auction.Rejected(auction.RejectBelowMinimum, detail), nil
		}
		return auction.Accepted(), nil

	case auction.TypeEnglish:
		s := state.English
		if s.Ended {
			return auction.Rejected(auction.RejectAuctionEnded, "auction has ended"), nil
		}
		if now >= s.AuctionEndTime {
			return auction.Rejected(auction.RejectBiddingWindowClosed, "bidding period has ended"), nil
		}
		if !im.outbids(amount, s.HighestBid) {
			detail := fmt.Sprintf("bid must be higher than current highest bid (%s)", wei.Format(s.HighestBid))
			return auction.Rejected(auction.RejectNotHigherThanCurrent, detail), nil
		}
		return auction.Accepted(), nil

	case auction.TypeSealedBid:
		s := state.SealedBid
		if s.AuctionEnded {
			return auction.Rejected(auction.RejectAuctionEnded, "auction has ended"), nil
		}
		if now >= s.BiddingEnd {
			return auction.Rejected(auction.RejectBiddingWindowClosed, "bidding phase has ended"), nil
		}
		// no amount check, the commit hides it until reveal
		return auction.Accepted(), nil

	case auction.TypeHoldToCompete:
		s := state.HoldToCompete
		if now >= s.AuctionEndTime {
			return auction.Rejected(auction.RejectBiddingWindowClosed, "auction time has ended"), nil
		}
		if !im.outbids(amount, s.HighestBid) {
			detail := fmt.Sprintf("bid must be higher than current highest bid (%s)", wei.Format(s.HighestBid))
			return auction.Rejected(auction.RejectNotHigherThanCurrent, detail), nil
		}
		return auction.Accepted(), nil

	case auction.TypePlayable:
		s := state.Playable
		if s.AuctionEnded {
			return auction.Rejected(auction.RejectAuctionEnded, "auction has ended"), nil
		}
		if s.EndTime != 0 && now >= s.EndTime {
			return auction.Rejected(auction.RejectBiddingWindowClosed, "auction time has ended"), nil
		}
		minBid := new(big.Int).Set(s.CurrentPrice)
		withIncrement := new(big.Int).Add(s.HighestBid, im.minIncrement)
		if s.HighestBid.Sign() > 0 && withIncrement.Cmp(minBid) > 0 {
			minBid = withIncrement
		}
		if amount.Cmp(minBid) < 0 {
			detail := fmt.Sprintf("bid must be at least %s", wei.Format(minBid))
			return auction.Rejected(auction.RejectBelowMinimum, detail), nil
		}
		return auction.Accepted(), nil

	case auction.TypeRandomSelection:
		s := state.RandomSelection
		if s.AuctionEnded {
			return auction.Rejected(auction.RejectAuctionEnded, "auction has ended"), nil
		}
		if now >= s.AuctionEndTime {
			return auction.Rejected(auction.RejectBiddingWindowClosed, "auction time has ended"), nil
		}
		// any positive entry amount joins the draw
		return auction.Accepted(), nil

	case auction.TypeOrderBook:
		s := state.OrderBook
		if s.AuctionEnded {
			return auction.Rejected(auction.RejectAuctionEnded, "auction has ended"), nil
		}
		if now >= s.AuctionEndTime {
			return auction.Rejected(auction.RejectBiddingWindowClosed, "auction time has ended"), nil
		}
		return auction.Accepted(), nil

	default:
		return auction.Rejected(auction.RejectMisconfiguredContract, "unknown auction mechanism"), nil
	}
}

// outbids applies the strictly-greater rule plus the configured increment.
func (im *validatorImpl) outbids(amount, highestBid *big.Int) bool {
	floor := new(big.Int).Add(highestBid, im.minIncrement)
	return amount.Cmp(floor) > 0
}
