package repository

import (
	"github.com/auctionx/goapi/base/ctx"
	"github.com/auctionx/goapi/domain"
	"github.com/auctionx/goapi/domain/auction"
	"github.com/auctionx/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type auctionRepoImpl struct {
	q query.Mongo
}

func NewAuctionRepo(q query.Mongo) auction.Repo {
	return &auctionRepoImpl{q}
}

func makeFindQuery(optFns ...auction.FindAllOptions) (bson.M, error) {
	opts, err := auction.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	query := bson.M{}

	if opts.ChainId != nil {
		query["chainId"] = *opts.ChainId
	}

	if opts.Type != nil {
		query["type"] = *opts.Type
	}

	if opts.Seller != nil {
		query["seller"] = *opts.Seller
	}

	if opts.Status != nil {
		query["status"] = *opts.Status
	}

	return query, nil
}

func (im *auctionRepoImpl) FindAll(c ctx.Ctx, optFns ...auction.FindAllOptions) ([]*auction.Auction, error) {
	res := []*auction.Auction{}

	opts, err := auction.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("auction.GetFindAllOptions failed")
		return res, err
	}

	qry, err := makeFindQuery(optFns...)
	if err != nil {
		return res, err
	}

	offset := 0
	limit := 0
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}

	if err := im.q.Search(c, domain.TableAuctions, offset, limit, "-createdAt", qry, &res); err != nil {
		c.WithField("err", err).Error("failed to query.Search")
		return res, err
	}
	return res, nil
}

func (im *auctionRepoImpl) Count(c ctx.Ctx, optFns ...auction.FindAllOptions) (int, error) {
	qry, err := makeFindQuery(optFns...)
	if err != nil {
		return 0, err
	}

	res, err := im.q.Count(c, domain.TableAuctions, qry)
	if err != nil {
		c.WithField("err", err).Error("failed to query.Count")
		return 0, err
	}
	return res, nil
}

func (im *auctionRepoImpl) FindOne(c ctx.Ctx, id auction.AuctionId) (*auction.Auction, error) {
	res := auction.Auction{}
	if err := im.q.FindOne(c, domain.TableAuctions, bson.M{"id": id.Id}, &res); err != nil {
		if err == query.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		c.WithField("err", err).Error("failed to query.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *auctionRepoImpl) Insert(c ctx.Ctx, a *auction.Auction) error {
	if err := im.q.Insert(c, domain.TableAuctions, a); err != nil {
		if err == query.ErrDuplicateKey {
			return domain.ErrConflict
		}
		c.WithField("err", err).Error("failed to query.Insert")
		return err
	}
	return nil
}

func (im *auctionRepoImpl) Patch(c ctx.Ctx, id auction.AuctionId, patchable auction.Patchable) error {
	if err := im.q.Patch(c, domain.TableAuctions, bson.M{"id": id.Id}, patchable); err != nil {
		if err == query.ErrNotFound {
			return domain.ErrNotFound
		}
		c.WithField("err", err).Error("failed to query.Patch")
		return err
	}
	return nil
}
