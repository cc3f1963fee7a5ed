package usecase

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/auctionx/goapi/base/ctx"
	"github.com/auctionx/goapi/domain"
	"github.com/auctionx/goapi/domain/auction"
	"github.com/auctionx/goapi/domain/orderbook"
	mChain "github.com/auctionx/goapi/service/chain/mocks"
)

var (
	testChainId      = domain.ChainId(1337)
	testContract     = domain.Address("0x5fbdb2315678afecb367f032d93f642f64180aa3")
	testContractAddr = common.HexToAddress(string(testContract))
)

func TestPlaceBidValueCarrying(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	cases := []struct {
		typ    auction.Type
		method string
	}{
		{auction.TypeDutch, "buy"},
		{auction.TypeEnglish, "bid"},
		{auction.TypePlayable, "placeBid"},
		{auction.TypeRandomSelection, "placeBid"},
	}
	for _, c := range cases {
		t.Run(string(c.typ), func(t *testing.T) {
			sender := &mChain.Sender{}
			sender.On("Send", mock.Anything, testChainId, testContractAddr, eth(2), mock.Anything, c.method).
				Return(domain.TxHash("0xabc"), nil)

			f := NewForwarder(sender)
			txHash, err := f.PlaceBid(ctx, testChainId, testContract, c.typ, &auction.BidProposal{Amount: eth(2)})
			req.NoError(err)
			req.Equal(domain.TxHash("0xabc"), txHash)
			sender.AssertExpectations(t)
		})
	}
}

func TestPlaceBidSealedBid(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	blinded := "0xaa10a51a10d67ffee487fd2ffd24e1bc9b2a0a04e048c02ca97bd1f000adcafe"
	var want [32]byte
	copy(want[:], common.FromHex(blinded))

	sender := &mChain.Sender{}
	sender.On("Send", mock.Anything, testChainId, testContractAddr, eth(1), mock.Anything, "bid", want).
		Return(domain.TxHash("0xabc"), nil)

	f := NewForwarder(sender)
	_, err := f.PlaceBid(ctx, testChainId, testContract, auction.TypeSealedBid, &auction.BidProposal{
		BlindedBid: blinded,
		Deposit:    eth(1),
	})
	req.NoError(err)
	sender.AssertExpectations(t)

	// a malformed digest never reaches the sender
	_, err = f.PlaceBid(ctx, testChainId, testContract, auction.TypeSealedBid, &auction.BidProposal{
		BlindedBid: "0x1234",
	})
	req.ErrorIs(err, domain.ErrBadParamInput)
}

func TestPlaceBidHoldToCompete(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	// the amount moves by argument, no transaction value
	sender := &mChain.Sender{}
	sender.On("Send", mock.Anything, testChainId, testContractAddr, (*big.Int)(nil), mock.Anything, "placeBid", eth(3)).
		Return(domain.TxHash("0xabc"), nil)

	f := NewForwarder(sender)
	_, err := f.PlaceBid(ctx, testChainId, testContract, auction.TypeHoldToCompete, &auction.BidProposal{Amount: eth(3)})
	req.NoError(err)
	sender.AssertExpectations(t)
}

func TestPlaceBuyOrderLocksExactValue(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	price := eth(2)
	quantity := big.NewInt(7)

	sender := &mChain.Sender{}
	sender.On("Send", mock.Anything, testChainId, testContractAddr, eth(14), mock.Anything, "placeBuyOrder", price, quantity).
		Return(domain.TxHash("0xabc"), nil)

	f := NewForwarder(sender)
	_, err := f.PlaceBid(ctx, testChainId, testContract, auction.TypeOrderBook, &auction.BidProposal{
		Order: &orderbook.Order{Side: orderbook.SideBuy, Price: price, Quantity: quantity},
	})
	req.NoError(err)
	sender.AssertExpectations(t)
}

func TestPlaceSellOrderCarriesNoValue(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	price := eth(2)
	quantity := big.NewInt(7)

	sender := &mChain.Sender{}
	sender.On("Send", mock.Anything, testChainId, testContractAddr, (*big.Int)(nil), mock.Anything, "placeSellOrder", price, quantity).
		Return(domain.TxHash("0xabc"), nil)

	f := NewForwarder(sender)
	_, err := f.PlaceBid(ctx, testChainId, testContract, auction.TypeOrderBook, &auction.BidProposal{
		Order: &orderbook.Order{Side: orderbook.SideSell, Price: price, Quantity: quantity},
	})
	req.NoError(err)
	sender.AssertExpectations(t)
}

func TestPlaceOrderRejectsMalformedOrder(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	f := NewForwarder(&mChain.Sender{})

	_, err := f.PlaceBid(ctx, testChainId, testContract, auction.TypeOrderBook, &auction.BidProposal{})
	req.ErrorIs(err, domain.ErrBadParamInput)

	_, err = f.PlaceBid(ctx, testChainId, testContract, auction.TypeOrderBook, &auction.BidProposal{
		Order: &orderbook.Order{Side: orderbook.SideBuy, Price: eth(1), Quantity: big.NewInt(0)},
	})
	req.ErrorIs(err, domain.ErrBadParamInput)
}
