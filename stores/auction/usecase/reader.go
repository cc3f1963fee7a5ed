package usecase

import (
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/viney-shih/goroutines"

	bCtx "github.com/auctionx/goapi/base/ctx"
	"github.com/auctionx/goapi/base/log"
	"github.com/auctionx/goapi/domain"
	"github.com/auctionx/goapi/domain/auction"
	"github.com/auctionx/goapi/domain/mechanism"
	"github.com/auctionx/goapi/service/chain"
)

type readerImpl struct {
	chainClient chain.Client
	workerPool  *goroutines.Pool
}

func NewStateReader(chainClient chain.Client) auction.StateReader {
	return &readerImpl{
		chainClient: chainClient,
		workerPool:  goroutines.NewPool(32, goroutines.WithTaskQueueLength(256), goroutines.WithPreAllocWorkers(8)),
	}
}

// Read snapshots the contract at a single block height. The header is
// fetched once and its number passed to every accessor call, so the fields
// of one snapshot can never straddle two blocks.
func (im *readerImpl) Read(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, typ auction.Type) (*auction.State, error) {
	desc, ok := mechanism.Get(typ)
	if !ok {
		return nil, domain.ErrAbiUnavailable
	}

	header, err := im.chainClient.LatestHeader(ctx, chainId)
	if err != nil {
		return nil, err
	}
	blk := header.Number

	state := &auction.State{
		Type:        typ,
		BlockNumber: domain.BlockNumber(blk.Uint64()),
		BlockTime:   int64(header.Time),
	}

	contractAddr := common.HexToAddress(string(addr))
	read := func(method string) ([]interface{}, error) {
		return im.chainClient.Call(ctx, chainId, contractAddr, blk, desc.ABI, method)
	}

	switch typ {
	case auction.TypeDutch:
		s := &auction.DutchState{}
		if s.CurrentPrice, err = readBig(read, "getCurrentPrice"); err != nil {
			return nil, err
		}
		if s.Ended, err = readBool(read, "ended"); err != nil {
			return nil, err
		}
		if s.Winner, err = readAddr(read, "winner"); err != nil {
			return nil, err
		}
		if s.Seller, err = readAddr(read, "seller"); err != nil {
			return nil, err
		}
		if s.StartPrice, err = readBig(read, "startPrice"); err != nil {
			return nil, err
		}
		if s.ReservePrice, err = readBig(read, "reservePrice"); err != nil {
			return nil, err
		}
		if s.StartTime, err = readInt64(read, "startTime"); err != nil {
			return nil, err
		}
		if s.Duration, err = readInt64(read, "duration"); err != nil {
			return nil, err
		}
		state.Dutch = s

	case auction.TypeEnglish:
		s := &auction.EnglishState{}
		if s.AuctionEndTime, err = readInt64(read, "auctionEndTime"); err != nil {
			return nil, err
		}
		if s.HighestBid, err = readBig(read, "highestBid"); err != nil {
			return nil, err
		}
		if s.HighestBidder, err = readAddr(read, "highestBidder"); err != nil {
			return nil, err
		}
		if s.Ended, err = readBool(read, "ended"); err != nil {
			return nil, err
		}
		if s.Seller, err = readAddr(read, "seller"); err != nil {
			return nil, err
		}
		state.English = s

	case auction.TypeSealedBid:
		s := &auction.SealedBidState{}
		if s.BiddingEnd, err = readInt64(read, "biddingEnd"); err != nil {
			return nil, err
		}
		if s.RevealEnd, err = readInt64(read, "revealEnd"); err != nil {
			return nil, err
		}
		if s.AuctionEnded, err = readBool(read, "auctionEnded"); err != nil {
			return nil, err
		}
		if s.HighestBidder, err = readAddr(read, "highestBidder"); err != nil {
			return nil, err
		}
		if s.HighestBid, err = readBig(read, "highestBid"); err != nil {
			return nil, err
		}
		if s.Auctioneer, err = readAddr(read, "auctioneer"); err != nil {
			return nil, err
		}
		state.SealedBid = s

	case auction.TypeHoldToCompete:
		s := &auction.HoldToCompeteState{}
		if s.AuctionEndTime, err = readInt64(read, "auctionEndTime"); err != nil {
			return nil, err
		}
		if s.HighestBidder, err = readAddr(read, "highestBidder"); err != nil {
			return nil, err
		}
		if s.HighestBid, err = readBig(read, "highestBid"); err != nil {
			return nil, err
		}
		if s.MinHoldAmount, err = readBig(read, "minHoldAmount"); err != nil {
			return nil, err
		}
		if s.BiddingToken, err = readAddr(read, "biddingToken"); err != nil {
			return nil, err
		}
		if s.Seller, err = readAddr(read, "seller"); err != nil {
			return nil, err
		}
		state.HoldToCompete = s

	case auction.TypePlayable:
		s := &auction.PlayableState{}
		if s.CurrentPrice, err = readBig(read, "getCurrentPrice"); err != nil {
			return nil, err
		}
		if s.HighestBidder, err = readAddr(read, "highestBidder"); err != nil {
			return nil, err
		}
		if s.HighestBid, err = readBig(read, "highestBid"); err != nil {
			return nil, err
		}
		if s.AuctionEnded, err = readBool(read, "auctionEnded"); err != nil {
			return nil, err
		}
		if s.StartTime, err = readInt64(read, "startTime"); err != nil {
			return nil, err
		}
		if s.EndTime, err = readInt64(read, "endTime"); err != nil {
			return nil, err
		}
		state.Playable = s

	case auction.TypeRandomSelection:
		s := &auction.RandomSelectionState{}
		if s.AuctionEndTime, err = readInt64(read, "auctionEndTime"); err != nil {
			return nil, err
		}
		if s.AuctionEnded, err = readBool(read, "auctionEnded"); err != nil {
			return nil, err
		}
		if s.Owner, err = readAddr(read, "owner"); err != nil {
			return nil, err
		}
		state.RandomSelection = s

	case auction.TypeOrderBook:
		s := &auction.OrderBookState{}
		if s.AuctionEndTime, err = readInt64(read, "auctionEndTime"); err != nil {
			return nil, err
		}
		if s.AuctionEnded, err = readBool(read, "auctionEnded"); err != nil {
			return nil, err
		}
		if s.ClearingPrice, err = readBig(read, "clearingPrice"); err != nil {
			return nil, err
		}
		if s.Admin, err = readAddr(read, "admin"); err != nil {
			return nil, err
		}
		state.OrderBook = s

	default:
		return nil, domain.ErrAbiUnavailable
	}

	return state, nil
}

// ReadBatch fans display reads for unrelated contracts out over the worker
// pool. Reads are independent, a failing contract yields a nil slot instead
// of failing the whole batch.
func (im *readerImpl) ReadBatch(ctx bCtx.Ctx, chainId domain.ChainId, targets []auction.BatchTarget) ([]*auction.State, error) {
	states := make([]*auction.State, len(targets))
	wg := sync.WaitGroup{}
	for i, target := range targets {
		i, target := i, target
		wg.Add(1)
		task := func() {
			defer wg.Done()
			state, err := im.Read(ctx, chainId, target.Address, target.Type)
			if err != nil {
				ctx.WithFields(log.Fields{
					"address": target.Address,
					"type":    target.Type,
					"err":     err,
				}).Warn("failed to read auction state")
				return
			}
			states[i] = state
		}
		if err := im.workerPool.Schedule(task); err != nil {
			// pool saturated, run inline rather than drop the read
			task()
		}
	}
	wg.Wait()
	return states, nil
}

type readFn func(method string) ([]interface{}, error)

func readBig(read readFn, method string) (*big.Int, error) {
	unpacked, err := read(method)
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func readBool(read readFn, method string) (bool, error) {
	unpacked, err := read(method)
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func readAddr(read readFn, method string) (domain.Address, error) {
	unpacked, err := read(method)
	if err != nil {
		return "", err
	}
	return domain.Address(unpacked[0].(common.Address).Hex()).ToLower(), nil
}

func readInt64(read readFn, method string) (int64, error) {
	v, err := readBig(read, method)
	if err != nil {
		return 0, err
	}
	return v.Int64(), nil
}
