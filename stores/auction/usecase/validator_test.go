package usecase

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/auctionx/goapi/base/ctx"
	"github.com/auctionx/goapi/domain"
	"github.com/auctionx/goapi/domain/auction"
	mAuction "github.com/auctionx/goapi/domain/auction/mocks"
	"github.com/auctionx/goapi/domain/orderbook"
)

func eth(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), domain.WeiPerEther)
}

func testRecord(typ auction.Type) *auction.Auction {
	return &auction.Auction{
		Id:              "a-1",
		ChainId:         domain.ChainId(1337),
		Type:            typ,
		Status:          auction.StatusActive,
		ContractAddress: domain.Address("0x5fbdb2315678afecb367f032d93f642f64180aa3"),
	}
}

func newTestValidator(state *auction.State) (auction.Validator, *mAuction.StateReader) {
	reader := &mAuction.StateReader{}
	if state != nil {
		reader.On("Read", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(state, nil)
	}
	return NewValidator(reader, nil), reader
}

func TestValidateBidDutch(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	state := &auction.State{
		Type:      auction.TypeDutch,
		BlockTime: 1_700_000_000,
		Dutch: &auction.DutchState{
			CurrentPrice: eth(5),
			Ended:        false,
		},
	}

	cases := []struct {
		name   string
		amount *big.Int
		ended  bool
		valid  bool
		reason auction.RejectReason
	}{
		{name: "above current price", amount: eth(6), valid: true},
		{name: "exactly current price", amount: eth(5), valid: true},
		{name: "one wei below", amount: new(big.Int).Sub(eth(5), domain.Big1), reason: auction.RejectBelowMinimum},
		{name: "ended beats any amount", amount: eth(100), ended: true, reason: auction.RejectAuctionEnded},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			state.Dutch.Ended = c.ended
			v, _ := newTestValidator(state)
			res, err := v.ValidateBid(ctx, testRecord(auction.TypeDutch), &auction.BidProposal{Amount: c.amount})
			req.NoError(err)
			req.Equal(c.valid, res.Valid)
			req.Equal(c.reason, res.Reason)
		})
	}
}

func TestValidateBidEnglish(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	state := &auction.State{
		Type:      auction.TypeEnglish,
		BlockTime: 1_700_000_000,
		English: &auction.EnglishState{
			AuctionEndTime: 1_700_003_600,
			HighestBid:     eth(3),
		},
	}

	cases := []struct {
		name      string
		amount    *big.Int
		ended     bool
		blockTime int64
		valid     bool
		reason    auction.RejectReason
	}{
		{name: "higher than highest", amount: new(big.Int).Add(eth(3), domain.Big1), valid: true},
		{name: "equal to highest", amount: eth(3), reason: auction.RejectNotHigherThanCurrent},
		{name: "below highest", amount: eth(2), reason: auction.RejectNotHigherThanCurrent},
		{name: "window closed", amount: eth(4), blockTime: 1_700_003_600, reason: auction.RejectBiddingWindowClosed},
		{name: "ended", amount: eth(4), ended: true, reason: auction.RejectAuctionEnded},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			state.English.Ended = c.ended
			state.BlockTime = 1_700_000_000
			if c.blockTime != 0 {
				state.BlockTime = c.blockTime
			}
			v, _ := newTestValidator(state)
			res, err := v.ValidateBid(ctx, testRecord(auction.TypeEnglish), &auction.BidProposal{Amount: c.amount})
			req.NoError(err)
			req.Equal(c.valid, res.Valid)
			req.Equal(c.reason, res.Reason)
		})
	}
}

func TestValidateBidEnglishWithMinIncrement(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	state := &auction.State{
		Type:      auction.TypeEnglish,
		BlockTime: 1_700_000_000,
		English: &auction.EnglishState{
			AuctionEndTime: 1_700_003_600,
			HighestBid:     eth(3),
		},
	}
	reader := &mAuction.StateReader{}
	reader.On("Read", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(state, nil)
	v := NewValidator(reader, &ValidatorCfg{MinIncrement: eth(1)})

	res, err := v.ValidateBid(ctx, testRecord(auction.TypeEnglish), &auction.BidProposal{Amount: eth(4)})
	req.NoError(err)
	req.False(res.Valid)
	req.Equal(auction.RejectNotHigherThanCurrent, res.Reason)

	res, err = v.ValidateBid(ctx, testRecord(auction.TypeEnglish), &auction.BidProposal{Amount: new(big.Int).Add(eth(4), domain.Big1)})
	req.NoError(err)
	req.True(res.Valid)
}

func TestValidateBidSealedBid(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	state := &auction.State{
		Type:      auction.TypeSealedBid,
		BlockTime: 1_700_000_000,
		SealedBid: &auction.SealedBidState{
			BiddingEnd: 1_700_001_800,
			RevealEnd:  1_700_003_600,
		},
	}
	blinded := "aa10a51a10d67ffee487fd2ffd24e1bc9b2a0a04e048c02ca97bd1f000adcafe"

	v, _ := newTestValidator(state)

	// commit phase open, no amount required
	res, err := v.ValidateBid(ctx, testRecord(auction.TypeSealedBid), &auction.BidProposal{BlindedBid: blinded, Deposit: eth(1)})
	req.NoError(err)
	req.True(res.Valid)

	// negative deposit never reaches the ledger
	res, err = v.ValidateBid(ctx, testRecord(auction.TypeSealedBid), &auction.BidProposal{BlindedBid: blinded, Deposit: big.NewInt(-1)})
	req.NoError(err)
	req.False(res.Valid)
	req.Equal(auction.RejectBelowMinimum, res.Reason)

	// commit phase over
	state.BlockTime = 1_700_001_800
	v, _ = newTestValidator(state)
	res, err = v.ValidateBid(ctx, testRecord(auction.TypeSealedBid), &auction.BidProposal{BlindedBid: blinded})
	req.NoError(err)
	req.False(res.Valid)
	req.Equal(auction.RejectBiddingWindowClosed, res.Reason)
}

func TestValidateBidHoldToCompete(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	state := &auction.State{
		Type:      auction.TypeHoldToCompete,
		BlockTime: 1_700_000_000,
		HoldToCompete: &auction.HoldToCompeteState{
			AuctionEndTime: 1_700_003_600,
			HighestBid:     eth(2),
			MinHoldAmount:  eth(100),
		},
	}
	v, _ := newTestValidator(state)

	res, err := v.ValidateBid(ctx, testRecord(auction.TypeHoldToCompete), &auction.BidProposal{Amount: eth(3)})
	req.NoError(err)
	req.True(res.Valid)

	res, err = v.ValidateBid(ctx, testRecord(auction.TypeHoldToCompete), &auction.BidProposal{Amount: eth(2)})
	req.NoError(err)
	req.False(res.Valid)
	req.Equal(auction.RejectNotHigherThanCurrent, res.Reason)
}

func TestValidateBidPlayable(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	state := &auction.State{
		Type:      auction.TypePlayable,
		BlockTime: 1_700_000_000,
		Playable: &auction.PlayableState{
			CurrentPrice: eth(1),
			HighestBid:   domain.Big0,
			EndTime:      1_700_003_600,
		},
	}

	// no bids yet: current price is the floor
	v, _ := newTestValidator(state)
	res, err := v.ValidateBid(ctx, testRecord(auction.TypePlayable), &auction.BidProposal{Amount: eth(1)})
	req.NoError(err)
	req.True(res.Valid)

	// once outbid, the highest bid takes over as floor
	state.Playable.HighestBid = eth(2)
	v, _ = newTestValidator(state)
	res, err = v.ValidateBid(ctx, testRecord(auction.TypePlayable), &auction.BidProposal{Amount: eth(1)})
	req.NoError(err)
	req.False(res.Valid)
	req.Equal(auction.RejectBelowMinimum, res.Reason)
}

func TestValidateBidRandomSelection(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	state := &auction.State{
		Type:      auction.TypeRandomSelection,
		BlockTime: 1_700_000_000,
		RandomSelection: &auction.RandomSelectionState{
			AuctionEndTime: 1_700_003_600,
		},
	}
	v, _ := newTestValidator(state)

	// any positive entry joins the draw
	res, err := v.ValidateBid(ctx, testRecord(auction.TypeRandomSelection), &auction.BidProposal{Amount: big.NewInt(1)})
	req.NoError(err)
	req.True(res.Valid)

	res, err = v.ValidateBid(ctx, testRecord(auction.TypeRandomSelection), &auction.BidProposal{Amount: domain.Big0})
	req.NoError(err)
	req.False(res.Valid)
	req.Equal(auction.RejectBelowMinimum, res.Reason)
}

func TestValidateBidOrderBook(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	state := &auction.State{
		Type:      auction.TypeOrderBook,
		BlockTime: 1_700_000_000,
		OrderBook: &auction.OrderBookState{
			AuctionEndTime: 1_700_003_600,
		},
	}
	order := &orderbook.Order{Side: orderbook.SideBuy, Price: eth(2), Quantity: big.NewInt(3)}

	v, _ := newTestValidator(state)
	res, err := v.ValidateBid(ctx, testRecord(auction.TypeOrderBook), &auction.BidProposal{
		Order:  order,
		Amount: orderbook.LockedValue(order.Price, order.Quantity),
	})
	req.NoError(err)
	req.True(res.Valid)

	// a locked value off by one wei is malformed input, not a soft reject
	_, err = v.ValidateBid(ctx, testRecord(auction.TypeOrderBook), &auction.BidProposal{
		Order:  order,
		Amount: new(big.Int).Add(orderbook.LockedValue(order.Price, order.Quantity), domain.Big1),
	})
	req.ErrorIs(err, domain.ErrBadParamInput)

	_, err = v.ValidateBid(ctx, testRecord(auction.TypeOrderBook), &auction.BidProposal{})
	req.ErrorIs(err, domain.ErrBadParamInput)

	badSide := &orderbook.Order{Side: orderbook.Side("short"), Price: eth(1), Quantity: domain.Big1}
	_, err = v.ValidateBid(ctx, testRecord(auction.TypeOrderBook), &auction.BidProposal{Order: badSide})
	req.ErrorIs(err, domain.ErrBadParamInput)
}

func TestValidateBidOffChain(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	// no contract address: accepted, flagged, and the ledger is never asked
	reader := &mAuction.StateReader{}
	v := NewValidator(reader, nil)

	rec := testRecord(auction.TypeEnglish)
	rec.ContractAddress = ""
	res, err := v.ValidateBid(ctx, rec, &auction.BidProposal{Amount: eth(1)})
	req.NoError(err)
	req.True(res.Valid)
	req.True(res.OffChain)
	reader.AssertNotCalled(t, "Read", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestValidateBidLedgerUnavailable(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	reader := &mAuction.StateReader{}
	reader.On("Read", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrLedgerUnavailable)
	v := NewValidator(reader, nil)

	// an unreadable ledger must reject, never default-accept
	res, err := v.ValidateBid(ctx, testRecord(auction.TypeEnglish), &auction.BidProposal{Amount: eth(1)})
	req.NoError(err)
	req.False(res.Valid)
	req.Equal(auction.RejectLedgerUnavailable, res.Reason)
}

func TestValidateBidReadErrorPassesThrough(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	boom := errors.New("boom")
	reader := &mAuction.StateReader{}
	reader.On("Read", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, boom)
	v := NewValidator(reader, nil)

	_, err := v.ValidateBid(ctx, testRecord(auction.TypeEnglish), &auction.BidProposal{Amount: eth(1)})
	req.ErrorIs(err, boom)
}

func TestValidateBidIsIdempotent(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	state := &auction.State{
		Type:      auction.TypeEnglish,
		BlockTime: 1_700_000_000,
		English: &auction.EnglishState{
			AuctionEndTime: 1_700_003_600,
			HighestBid:     eth(3),
		},
	}
	v, _ := newTestValidator(state)
	proposal := &auction.BidProposal{Amount: eth(4)}

	first, err := v.ValidateBid(ctx, testRecord(auction.TypeEnglish), proposal)
	req.NoError(err)
	for i := 0; i < 5; i++ {
		res, err := v.ValidateBid(ctx, testRecord(auction.TypeEnglish), proposal)
		req.NoError(err)
		req.Equal(first, res)
	}
}
