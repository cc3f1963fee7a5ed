package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	bCtx "github.com/auctionx/goapi/base/ctx"
	"github.com/auctionx/goapi/base/log"
	"github.com/auctionx/goapi/base/wei"
	"github.com/auctionx/goapi/domain"
	"github.com/auctionx/goapi/domain/auction"
)

type auctionUsecaseImpl struct {
	auction.Deployer
	auction.StateReader
	auction.Validator
	auction.Forwarder
	repo auction.Repo
}

func NewAuctionUsecase(
	deployer auction.Deployer,
	reader auction.StateReader,
	validator auction.Validator,
	forwarder auction.Forwarder,
	repo auction.Repo,
) auction.Usecase {
	return &auctionUsecaseImpl{
		Deployer:    deployer,
		StateReader: reader,
		Validator:   validator,
		Forwarder:   forwarder,
		repo:        repo,
	}
}

// Create inserts a new Draft record after checking the parts the engine
// depends on later. Prices stay as the caller's decimal strings, they are
// only parsed here to fail fast on garbage input.
func (im *auctionUsecaseImpl) Create(ctx bCtx.Ctx, rec *auction.Auction) error {
	if !rec.Type.IsValid() {
		return xerrors.Errorf("%w: unknown auction type %q", domain.ErrUnknownAuctionType, rec.Type)
	}
	for _, p := range []string{rec.StartPrice, rec.ReservePrice, rec.PriceDropAmount, rec.MinHoldAmount} {
		if p == "" {
			continue
		}
		if _, err := wei.Parse(p); err != nil {
			return xerrors.Errorf("%w: %s", domain.ErrInvalidParameters, err.Error())
		}
	}

	if rec.Id == "" {
		rec.Id = uuid.New().String()
	}
	rec.Seller = rec.Seller.ToLower()
	rec.ContractAddress = ""
	rec.TokenAddress = ""
	rec.Status = auction.StatusDraft
	now := time.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	return im.repo.Insert(ctx, rec)
}

func (im *auctionUsecaseImpl) Get(ctx bCtx.Ctx, id auction.AuctionId) (*auction.Auction, error) {
	return im.repo.FindOne(ctx, id)
}

func (im *auctionUsecaseImpl) List(ctx bCtx.Ctx, opts ...auction.FindAllOptions) (*auction.SearchResult, error) {
	items, err := im.repo.FindAll(ctx, opts...)
	if err != nil {
		return nil, err
	}
	count, err := im.repo.Count(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &auction.SearchResult{Items: items, Count: count}, nil
}

// DeployAndActivate deploys the record's contract and writes the derived
// addresses back, moving the record from Draft to Active. A record that
// failed between deployment and write-back keeps its addresses unset, the
// caller retries with a fresh call.
func (im *auctionUsecaseImpl) DeployAndActivate(ctx bCtx.Ctx, id auction.AuctionId) (*auction.Deployment, error) {
	rec, err := im.repo.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Status != auction.StatusDraft {
		return nil, xerrors.Errorf("%w: auction %s is not in draft status", domain.ErrConflict, rec.Id)
	}

	deployment, err := im.Deploy(ctx, rec)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	status := auction.StatusActive
	patch := auction.Patchable{
		ContractAddress: deployment.ContractAddress.ToLowerPtr(),
		Status:          &status,
		UpdatedAt:       &now,
	}
	if !deployment.TokenAddress.IsEmpty() {
		patch.TokenAddress = deployment.TokenAddress.ToLowerPtr()
	}
	if err := im.repo.Patch(ctx, id, patch); err != nil {
		// the contract is live but the record still says draft, surface
		// loudly so the operator can reconcile
		ctx.WithFields(log.Fields{
			"auctionId": rec.Id,
			"address":   deployment.ContractAddress,
			"err":       err,
		}).Error("deployed but failed to update record")
		return nil, err
	}
	return deployment, nil
}
