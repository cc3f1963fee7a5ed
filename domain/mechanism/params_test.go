package mechanism

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/auctionx/goapi/domain"
	"github.com/auctionx/goapi/domain/auction"
)

func eth(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), domain.WeiPerEther)
}

func TestBuildConstructorArgsDutch(t *testing.T) {
	req := require.New(t)

	rec := &auction.Auction{
		Type:              auction.TypeDutch,
		StartPrice:        "5",
		ReservePrice:      "2",
		Duration:          600,
		PriceDropInterval: 30,
	}
	args, err := BuildConstructorArgs(rec)
	req.NoError(err)
	req.Equal([]interface{}{eth(5), eth(2), big.NewInt(600), big.NewInt(30)}, args)

	// defaults fill every unset field
	args, err = BuildConstructorArgs(&auction.Auction{Type: auction.TypeDutch})
	req.NoError(err)
	req.Equal([]interface{}{eth(10), eth(1), big.NewInt(3600), big.NewInt(60)}, args)

	// reserve above start can never clear
	_, err = BuildConstructorArgs(&auction.Auction{
		Type:         auction.TypeDutch,
		StartPrice:   "1",
		ReservePrice: "2",
	})
	req.ErrorIs(err, domain.ErrInvalidParameters)
}

func TestBuildConstructorArgsEnglish(t *testing.T) {
	req := require.New(t)

	args, err := BuildConstructorArgs(&auction.Auction{
		Type:         auction.TypeEnglish,
		BiddingTime:  7200,
		ReservePrice: "0.5",
	})
	req.NoError(err)
	halfEth := new(big.Int).Div(domain.WeiPerEther, big.NewInt(2))
	req.Equal([]interface{}{big.NewInt(7200), halfEth}, args)

	args, err = BuildConstructorArgs(&auction.Auction{Type: auction.TypeEnglish})
	req.NoError(err)
	req.Equal([]interface{}{big.NewInt(3600), eth(1)}, args)
}

func TestBuildConstructorArgsSealedBid(t *testing.T) {
	req := require.New(t)

	args, err := BuildConstructorArgs(&auction.Auction{
		Type:        auction.TypeSealedBid,
		BiddingTime: 900,
		RevealTime:  450,
	})
	req.NoError(err)
	req.Equal([]interface{}{big.NewInt(900), big.NewInt(450)}, args)

	args, err = BuildConstructorArgs(&auction.Auction{Type: auction.TypeSealedBid})
	req.NoError(err)
	req.Equal([]interface{}{big.NewInt(3600), big.NewInt(1800)}, args)
}

func TestBuildConstructorArgsHoldToCompete(t *testing.T) {
	req := require.New(t)

	token := domain.Address("0x5fbdb2315678afecb367f032d93f642f64180aa3")
	args, err := BuildConstructorArgsWithToken(&auction.Auction{
		Type:          auction.TypeHoldToCompete,
		Duration:      1200,
		MinHoldAmount: "50",
	}, token)
	req.NoError(err)
	req.Equal([]interface{}{common.HexToAddress(string(token)), big.NewInt(1200), eth(50)}, args)

	// without a token the zero address goes in, the deployer substitutes
	// the auxiliary token later
	args, err = BuildConstructorArgs(&auction.Auction{Type: auction.TypeHoldToCompete})
	req.NoError(err)
	req.Equal([]interface{}{common.Address{}, big.NewInt(3600), eth(100)}, args)

	_, err = BuildConstructorArgsWithToken(&auction.Auction{Type: auction.TypeHoldToCompete}, "not-an-address")
	req.ErrorIs(err, domain.ErrInvalidParameters)
}

func TestBuildConstructorArgsPlayable(t *testing.T) {
	req := require.New(t)

	args, err := BuildConstructorArgs(&auction.Auction{Type: auction.TypePlayable})
	req.NoError(err)
	tenthEth := new(big.Int).Div(domain.WeiPerEther, big.NewInt(10))
	req.Equal([]interface{}{eth(10), eth(1), big.NewInt(3600), big.NewInt(60), tenthEth}, args)
}

func TestBuildConstructorArgsSingleDuration(t *testing.T) {
	req := require.New(t)

	for _, typ := range []auction.Type{auction.TypeRandomSelection, auction.TypeOrderBook} {
		args, err := BuildConstructorArgs(&auction.Auction{Type: typ, Duration: 500})
		req.NoError(err)
		req.Equal([]interface{}{big.NewInt(500)}, args)

		args, err = BuildConstructorArgs(&auction.Auction{Type: typ})
		req.NoError(err)
		req.Equal([]interface{}{big.NewInt(3600)}, args)
	}
}

func TestBuildConstructorArgsRejectsBadInput(t *testing.T) {
	req := require.New(t)

	_, err := BuildConstructorArgs(&auction.Auction{Type: auction.Type("FREE_FOR_ALL")})
	req.ErrorIs(err, domain.ErrUnknownAuctionType)

	_, err = BuildConstructorArgs(&auction.Auction{Type: auction.TypeDutch, StartPrice: "banana"})
	req.ErrorIs(err, domain.ErrInvalidParameters)

	_, err = BuildConstructorArgs(&auction.Auction{Type: auction.TypeEnglish, BiddingTime: -1})
	req.ErrorIs(err, domain.ErrInvalidParameters)
}

func TestDescriptorRegistryCoversAllTypes(t *testing.T) {
	req := require.New(t)

	for _, typ := range auction.AllTypes {
		desc, ok := Get(typ)
		req.True(ok)
		req.NotEmpty(desc.ContractName)
		req.NotEmpty(desc.BidMethod)

		// the bid method must exist on the ABI the reader and forwarder use
		_, found := desc.ABI.Methods[desc.BidMethod]
		req.True(found, "missing %s on %s", desc.BidMethod, desc.ContractName)
	}

	_, ok := Get(auction.Type("FREE_FOR_ALL"))
	req.False(ok)
}

func TestTokenInitialSupply(t *testing.T) {
	require.Equal(t, eth(1_000_000), TokenInitialSupply())
}
