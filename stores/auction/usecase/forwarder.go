package usecase

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	bCtx "github.com/auctionx/goapi/base/ctx"
	"github.com/auctionx/goapi/base/log"
	"github.com/auctionx/goapi/domain"
	"github.com/auctionx/goapi/domain/auction"
	"github.com/auctionx/goapi/domain/mechanism"
	"github.com/auctionx/goapi/domain/orderbook"
	"github.com/auctionx/goapi/service/chain"
)

// forwarderImpl encodes a validated proposal into the mechanism's write call
// and submits it with the custodial key.
type forwarderImpl struct {
	sender chain.Sender
}

func NewForwarder(sender chain.Sender) auction.Forwarder {
	return &forwarderImpl{sender: sender}
}

func (im *forwarderImpl) PlaceBid(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, typ auction.Type, proposal *auction.BidProposal) (domain.TxHash, error) {
	desc, ok := mechanism.Get(typ)
	if !ok {
		return "", domain.ErrUnknownAuctionType
	}
	contractAddr := common.HexToAddress(string(addr))

	var (
		txHash domain.TxHash
		err    error
	)
	switch typ {
	case auction.TypeDutch, auction.TypeEnglish, auction.TypePlayable, auction.TypeRandomSelection:
		// amount travels as transaction value, the method takes no args
		txHash, err = im.sender.Send(ctx, chainId, contractAddr, proposal.Amount, desc.ABI, desc.BidMethod)

	case auction.TypeSealedBid:
		blinded, convErr := parseBlindedBid(proposal.BlindedBid)
		if convErr != nil {
			return "", convErr
		}
		deposit := proposal.Deposit
		if deposit == nil {
			deposit = domain.Big0
		}
		txHash, err = im.sender.Send(ctx, chainId, contractAddr, deposit, desc.ABI, desc.BidMethod, blinded)

	case auction.TypeHoldToCompete:
		// token amounts move by argument, not by value
		txHash, err = im.sender.Send(ctx, chainId, contractAddr, nil, desc.ABI, desc.BidMethod, proposal.Amount)

	case auction.TypeOrderBook:
		txHash, err = im.placeOrder(ctx, chainId, contractAddr, desc, proposal.Order)

	default:
		return "", domain.ErrUnknownAuctionType
	}

	if err != nil {
		ctx.WithFields(log.Fields{
			"type":    typ,
			"address": addr,
			"err":     err,
		}).Warn("bid submission failed")
		return "", err
	}
	return txHash, nil
}

func (im *forwarderImpl) placeOrder(ctx bCtx.Ctx, chainId domain.ChainId, contractAddr common.Address, desc *mechanism.Descriptor, order *orderbook.Order) (domain.TxHash, error) {
	if order == nil {
		return "", xerrors.Errorf("%w: order book bid requires an order", domain.ErrBadParamInput)
	}
	if err := order.Validate(); err != nil {
		return "", xerrors.Errorf("%w: %v", domain.ErrBadParamInput, err)
	}
	if order.Side == orderbook.SideBuy {
		// the contract checks msg.value == price * quantity, reproduce the
		// product exactly or the submission reverts
		value := orderbook.LockedValue(order.Price, order.Quantity)
		return im.sender.Send(ctx, chainId, contractAddr, value, desc.ABI, "placeBuyOrder", order.Price, order.Quantity)
	}
	return im.sender.Send(ctx, chainId, contractAddr, nil, desc.ABI, "placeSellOrder", order.Price, order.Quantity)
}

func parseBlindedBid(s string) ([32]byte, error) {
	var out [32]byte
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if len(trimmed) != 64 {
		return out, xerrors.Errorf("%w: blinded bid must be a 32 byte hex string", domain.ErrBadParamInput)
	}
	raw, err := hex.DecodeString(trimmed)
	if err != nil {
		return out, xerrors.Errorf("%w: blinded bid is not valid hex", domain.ErrBadParamInput)
	}
	copy(out[:], raw)
	return out, nil
}
