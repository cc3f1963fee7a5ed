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
	mAuction "github.com/auctionx/goapi/domain/auction/mocks"
	mChain "github.com/auctionx/goapi/service/chain/mocks"
)

var (
	testBytecode      = []byte{0x60, 0x80, 0x60, 0x40}
	testTokenBytecode = []byte{0x60, 0x80, 0x60, 0x41}
)

func TestDeployNotConfigured(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	sender := &mChain.Sender{}
	sender.On("Configured").Return(false)
	artifacts := &mAuction.ArtifactRepo{}

	d := NewDeployer(sender, artifacts)
	_, err := d.Deploy(ctx, &auction.Auction{Id: "a-1", Type: auction.TypeEnglish})
	req.ErrorIs(err, domain.ErrDeploymentNotConfigured)
	sender.AssertNotCalled(t, "DeployContract", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeployUnknownType(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	d := NewDeployer(&mChain.Sender{}, &mAuction.ArtifactRepo{})
	_, err := d.Deploy(ctx, &auction.Auction{Id: "a-1", Type: auction.Type("FREE_FOR_ALL")})
	req.ErrorIs(err, domain.ErrUnknownAuctionType)
}

func TestDeployArtifactMissing(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	sender := &mChain.Sender{}
	sender.On("Configured").Return(true)
	artifacts := &mAuction.ArtifactRepo{}
	artifacts.On("Bytecode", mock.Anything, "EnglishAuction").Return(nil, domain.ErrArtifactMissing)

	d := NewDeployer(sender, artifacts)
	_, err := d.Deploy(ctx, &auction.Auction{Id: "a-1", Type: auction.TypeEnglish})
	req.ErrorIs(err, domain.ErrArtifactMissing)
}

func TestDeployEnglish(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	contractAddr := domain.Address("0x5fbdb2315678afecb367f032d93f642f64180aa3")

	sender := &mChain.Sender{}
	sender.On("Configured").Return(true)
	sender.On("DeployContract", mock.Anything, domain.ChainId(1337), testBytecode, mock.Anything,
		big.NewInt(3600), eth(1)).
		Return(contractAddr, domain.TxHash("0xabc"), nil)
	artifacts := &mAuction.ArtifactRepo{}
	artifacts.On("Bytecode", mock.Anything, "EnglishAuction").Return(testBytecode, nil)

	d := NewDeployer(sender, artifacts)
	deployment, err := d.Deploy(ctx, &auction.Auction{
		Id:      "a-1",
		ChainId: domain.ChainId(1337),
		Type:    auction.TypeEnglish,
	})
	req.NoError(err)
	req.Equal(contractAddr, deployment.ContractAddress)
	req.True(deployment.TokenAddress.IsEmpty())
}

func TestDeployHoldToCompeteDeploysAuxiliaryToken(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	tokenAddr := domain.Address("0xe7f1725e7734ce288f8367e1bb143e90bb3f0512")
	contractAddr := domain.Address("0x5fbdb2315678afecb367f032d93f642f64180aa3")

	sender := &mChain.Sender{}
	sender.On("Configured").Return(true)
	sender.On("DeployContract", mock.Anything, domain.ChainId(1337), testTokenBytecode, mock.Anything,
		"Auction Token", "AUCT", eth(1_000_000)).
		Return(tokenAddr, domain.TxHash("0xaaa"), nil)
	sender.On("DeployContract", mock.Anything, domain.ChainId(1337), testBytecode, mock.Anything,
		common.HexToAddress(string(tokenAddr)), big.NewInt(3600), eth(100)).
		Return(contractAddr, domain.TxHash("0xbbb"), nil)

	artifacts := &mAuction.ArtifactRepo{}
	artifacts.On("Bytecode", mock.Anything, "MintableToken").Return(testTokenBytecode, nil)
	artifacts.On("Bytecode", mock.Anything, "HoldToCompeteAuction").Return(testBytecode, nil)

	d := NewDeployer(sender, artifacts)
	deployment, err := d.Deploy(ctx, &auction.Auction{
		Id:      "a-1",
		ChainId: domain.ChainId(1337),
		Type:    auction.TypeHoldToCompete,
	})
	req.NoError(err)
	req.Equal(contractAddr, deployment.ContractAddress)
	req.Equal(tokenAddr, deployment.TokenAddress)
}

func TestDeployHoldToCompeteKeepsExistingToken(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	tokenAddr := domain.Address("0xe7f1725e7734ce288f8367e1bb143e90bb3f0512")
	contractAddr := domain.Address("0x5fbdb2315678afecb367f032d93f642f64180aa3")

	sender := &mChain.Sender{}
	sender.On("Configured").Return(true)
	sender.On("DeployContract", mock.Anything, domain.ChainId(1337), testBytecode, mock.Anything,
		common.HexToAddress(string(tokenAddr)), big.NewInt(3600), eth(100)).
		Return(contractAddr, domain.TxHash("0xbbb"), nil)

	artifacts := &mAuction.ArtifactRepo{}
	artifacts.On("Bytecode", mock.Anything, "HoldToCompeteAuction").Return(testBytecode, nil)

	d := NewDeployer(sender, artifacts)
	deployment, err := d.Deploy(ctx, &auction.Auction{
		Id:           "a-1",
		ChainId:      domain.ChainId(1337),
		Type:         auction.TypeHoldToCompete,
		TokenAddress: tokenAddr,
	})
	req.NoError(err)
	req.Equal(contractAddr, deployment.ContractAddress)

	// no auxiliary token was deployed, the record keeps its own
	req.True(deployment.TokenAddress.IsEmpty())
	artifacts.AssertNotCalled(t, "Bytecode", mock.Anything, "MintableToken")
}
