package mechanism

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	"github.com/auctionx/goapi/base/wei"
	"github.com/auctionx/goapi/domain"
	"github.com/auctionx/goapi/domain/auction"
)

// Defaults applied when a record leaves an optional field unset. Durations
// are seconds, prices are display-unit decimal strings.
const (
	DefaultDuration          = int64(3600)
	DefaultBiddingTime       = int64(3600)
	DefaultRevealTime        = int64(1800)
	DefaultPriceDropInterval = int64(60)

	DefaultStartPrice      = "10"
	DefaultReservePrice    = "1"
	DefaultPriceDropAmount = "0.1"
	DefaultMinHoldAmount   = "100"
)

// Auxiliary token parameters for hold-to-compete auctions created without a
// bidding token.
const (
	TokenName          = "Auction Token"
	TokenSymbol        = "AUCT"
	tokenInitialSupply = "1000000"
)

func TokenInitialSupply() *big.Int {
	supply, err := wei.Parse(tokenInitialSupply)
	if err != nil {
		panic(err)
	}
	return supply
}

func durationOrDefault(v, def int64) (*big.Int, error) {
	if v == 0 {
		v = def
	}
	if v < 0 {
		return nil, xerrors.Errorf("%w: negative duration %d", domain.ErrInvalidParameters, v)
	}
	return big.NewInt(v), nil
}

func priceOrDefault(v, def string) (*big.Int, error) {
	parsed, err := wei.ParseOrDefault(v, def)
	if err != nil {
		return nil, xerrors.Errorf("%w: %v", domain.ErrInvalidParameters, err)
	}
	return parsed, nil
}

// BuildConstructorArgs derives the ordered constructor argument list for the
// record's mechanism, converting display prices to base units and applying
// defaults. The argument order matches the contract constructor exactly.
//
// For hold-to-compete records without a token address the zero address is
// emitted; BuildConstructorArgsWithToken substitutes the real address once
// the auxiliary token is deployed.
func BuildConstructorArgs(rec *auction.Auction) ([]interface{}, error) {
	return BuildConstructorArgsWithToken(rec, rec.TokenAddress)
}

func BuildConstructorArgsWithToken(rec *auction.Auction, token domain.Address) ([]interface{}, error) {
	switch rec.Type {
	case auction.TypeDutch:
		startPrice, err := priceOrDefault(rec.StartPrice, DefaultStartPrice)
		if err != nil {
			return nil, err
		}
		reservePrice, err := priceOrDefault(rec.ReservePrice, DefaultReservePrice)
		if err != nil {
			return nil, err
		}
		if reservePrice.Cmp(startPrice) > 0 {
			return nil, xerrors.Errorf("%w: reserve price above start price", domain.ErrInvalidParameters)
		}
		duration, err := durationOrDefault(rec.Duration, DefaultDuration)
		if err != nil {
			return nil, err
		}
		dropInterval, err := durationOrDefault(rec.PriceDropInterval, DefaultPriceDropInterval)
		if err != nil {
			return nil, err
		}
		return []interface{}{startPrice, reservePrice, duration, dropInterval}, nil

	case auction.TypeEnglish:
		biddingTime, err := durationOrDefault(rec.BiddingTime, DefaultBiddingTime)
		if err != nil {
			return nil, err
		}
		reservePrice, err := priceOrDefault(rec.ReservePrice, DefaultReservePrice)
		if err != nil {
			return nil, err
		}
		return []interface{}{biddingTime, reservePrice}, nil

	case auction.TypeSealedBid:
		biddingTime, err := durationOrDefault(rec.BiddingTime, DefaultBiddingTime)
		if err != nil {
			return nil, err
		}
		revealTime, err := durationOrDefault(rec.RevealTime, DefaultRevealTime)
		if err != nil {
			return nil, err
		}
		return []interface{}{biddingTime, revealTime}, nil

	case auction.TypeHoldToCompete:
		duration, err := durationOrDefault(rec.Duration, DefaultDuration)
		if err != nil {
			return nil, err
		}
		minHold, err := priceOrDefault(rec.MinHoldAmount, DefaultMinHoldAmount)
		if err != nil {
			return nil, err
		}
		tokenAddr := common.Address{}
		if !token.IsEmpty() {
			if !common.IsHexAddress(string(token)) {
				return nil, xerrors.Errorf("%w: bad token address %q", domain.ErrInvalidParameters, token)
			}
			tokenAddr = common.HexToAddress(string(token))
		}
		return []interface{}{tokenAddr, duration, minHold}, nil

	case auction.TypePlayable:
		startPrice, err := priceOrDefault(rec.StartPrice, DefaultStartPrice)
		if err != nil {
			return nil, err
		}
		reservePrice, err := priceOrDefault(rec.ReservePrice, DefaultReservePrice)
		if err != nil {
			return nil, err
		}
		duration, err := durationOrDefault(rec.Duration, DefaultDuration)
		if err != nil {
			return nil, err
		}
		dropInterval, err := durationOrDefault(rec.PriceDropInterval, DefaultPriceDropInterval)
		if err != nil {
			return nil, err
		}
		dropAmount, err := priceOrDefault(rec.PriceDropAmount, DefaultPriceDropAmount)
		if err != nil {
			return nil, err
		}
		return []interface{}{startPrice, reservePrice, duration, dropInterval, dropAmount}, nil

	case auction.TypeRandomSelection, auction.TypeOrderBook:
		duration, err := durationOrDefault(rec.Duration, DefaultDuration)
		if err != nil {
			return nil, err
		}
		return []interface{}{duration}, nil

	default:
		return nil, xerrors.Errorf("%w: %s", domain.ErrUnknownAuctionType, rec.Type)
	}
}
