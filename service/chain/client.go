package chain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	bCtx "github.com/auctionx/goapi/base/ctx"
	"github.com/auctionx/goapi/base/log"
	"github.com/auctionx/goapi/domain"
)

const defaultCallTimeout = 10 * time.Second

type ClientCfg struct {
	RpcUrls map[domain.ChainId]string

	// CallTimeout bounds every ledger-facing call. On expiry the call fails
	// with ErrLedgerUnavailable instead of hanging.
	CallTimeout time.Duration
}

// Client is the read-only ledger handle. Reads are side-effect free and may
// run concurrently for unrelated contracts. Passing a block number pins the
// read so one validation decision observes a single height.
type Client interface {
	Call(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	LatestHeader(ctx bCtx.Ctx, chainId domain.ChainId) (*types.Header, error)
}

type clientImpl struct {
	clients map[domain.ChainId]*ethclient.Client
	timeout time.Duration
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var anyerr error
	timeout := cfg.CallTimeout
	if timeout == 0 {
		timeout = defaultCallTimeout
	}
	clients := make(map[domain.ChainId]*ethclient.Client)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		clients[chainId] = client
	}
	return &clientImpl{clients: clients, timeout: timeout}, anyerr
}

func (c *clientImpl) get(chainId domain.ChainId) (*ethclient.Client, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, domain.ErrInvalidChainId
	}
	return client, nil
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, err := c.get(chainId)
	if err != nil {
		return nil, err
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}

	callCtx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	res, err := client.CallContract(callCtx, msg, blk)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"addr":   addr.Hex(),
			"err":    err,
		}).Warn("client.CallContract failed")
		return nil, xerrors.Errorf("%w: call %s: %v", domain.ErrLedgerUnavailable, method, err)
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) LatestHeader(ctx bCtx.Ctx, chainId domain.ChainId) (*types.Header, error) {
	client, err := c.get(chainId)
	if err != nil {
		return nil, err
	}
	callCtx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	header, err := client.HeaderByNumber(callCtx, nil)
	if err != nil {
		ctx.WithField("err", err).Warn("client.HeaderByNumber failed")
		return nil, xerrors.Errorf("%w: latest header: %v", domain.ErrLedgerUnavailable, err)
	}
	return header, nil
}
