package usecase

import (
	"github.com/google/uuid"

	baseabi "github.com/auctionx/goapi/base/abi"
	bCtx "github.com/auctionx/goapi/base/ctx"
	"github.com/auctionx/goapi/base/log"
	"github.com/auctionx/goapi/domain"
	"github.com/auctionx/goapi/domain/auction"
	"github.com/auctionx/goapi/domain/mechanism"
	"github.com/auctionx/goapi/service/chain"
)

// deployerImpl turns a draft record into a live contract. One call makes
// exactly one contract-creation submission, or two when a hold-to-compete
// record has no bidding token yet. Failures are never retried here: the
// caller retries with a fresh call so a stale nonce cannot be reused.
type deployerImpl struct {
	sender    chain.Sender
	artifacts auction.ArtifactRepo
}

func NewDeployer(sender chain.Sender, artifacts auction.ArtifactRepo) auction.Deployer {
	return &deployerImpl{sender: sender, artifacts: artifacts}
}

func (im *deployerImpl) Deploy(ctx bCtx.Ctx, rec *auction.Auction) (*auction.Deployment, error) {
	desc, ok := mechanism.Get(rec.Type)
	if !ok {
		return nil, domain.ErrUnknownAuctionType
	}
	if !im.sender.Configured() {
		return nil, domain.ErrDeploymentNotConfigured
	}

	deployId := uuid.New().String()
	ctx = bCtx.WithValue(ctx, "deployId", deployId)

	tokenAddress := rec.TokenAddress
	deployedToken := domain.Address("")
	if desc.RequiresToken && tokenAddress.IsEmpty() {
		addr, err := im.deployToken(ctx, rec.ChainId)
		if err != nil {
			return nil, err
		}
		tokenAddress = addr
		deployedToken = addr
		ctx.WithFields(log.Fields{
			"auctionId": rec.Id,
			"token":     addr,
		}).Info("deployed auxiliary bidding token")
	}

	args, err := mechanism.BuildConstructorArgsWithToken(rec, tokenAddress)
	if err != nil {
		return nil, err
	}

	bytecode, err := im.artifacts.Bytecode(ctx, desc.ContractName)
	if err != nil {
		return nil, err
	}

	contractAddress, txHash, err := im.sender.DeployContract(ctx, rec.ChainId, bytecode, desc.ABI, args...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"auctionId": rec.Id,
			"contract":  desc.ContractName,
			"err":       err,
		}).Error("contract deployment failed")
		return nil, err
	}
	ctx.WithFields(log.Fields{
		"auctionId": rec.Id,
		"contract":  desc.ContractName,
		"address":   contractAddress,
		"txHash":    txHash,
	}).Info("deployed auction contract")

	return &auction.Deployment{
		ContractAddress: contractAddress,
		TokenAddress:    deployedToken,
	}, nil
}

func (im *deployerImpl) deployToken(ctx bCtx.Ctx, chainId domain.ChainId) (domain.Address, error) {
	bytecode, err := im.artifacts.Bytecode(ctx, mechanism.TokenContractName)
	if err != nil {
		return "", err
	}
	addr, _, err := im.sender.DeployContract(ctx, chainId, bytecode, baseabi.MintableTokenABI,
		mechanism.TokenName, mechanism.TokenSymbol, mechanism.TokenInitialSupply())
	if err != nil {
		return "", err
	}
	return addr, nil
}
