package chain

import (
	"crypto/ecdsa"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	"github.com/auctionx/goapi/base/backoff"
	bCtx "github.com/auctionx/goapi/base/ctx"
	"github.com/auctionx/goapi/base/log"
	"github.com/auctionx/goapi/domain"
)

type SenderCfg struct {
	RpcUrls map[domain.ChainId]string

	// PrivateKey is the custodial signing key in hex. Leaving it empty is a
	// valid deployment: the sender then reports not-configured instead of
	// crashing on first use.
	PrivateKey string

	CallTimeout time.Duration

	// ReceiptTimeout bounds how long a submission waits for inclusion.
	ReceiptTimeout time.Duration
}

// Sender signs and submits state-mutating calls with the custodial key.
// Submissions are serialized per key so concurrent deployments cannot race
// on the account nonce. Nothing here retries: a failed submission must be
// retried by the caller with a fresh call and a fresh nonce.
type Sender interface {
	Configured() bool
	From() domain.Address
	Send(ctx bCtx.Ctx, chainId domain.ChainId, to common.Address, value *big.Int, _abi abi.ABI, method string, params ...interface{}) (domain.TxHash, error)
	DeployContract(ctx bCtx.Ctx, chainId domain.ChainId, bytecode []byte, _abi abi.ABI, args ...interface{}) (domain.Address, domain.TxHash, error)
}

type senderImpl struct {
	clients        map[domain.ChainId]*ethclient.Client
	key            *ecdsa.PrivateKey
	from           common.Address
	callTimeout    time.Duration
	receiptTimeout time.Duration

	// guards the nonce window between PendingNonceAt and SendTransaction
	mu sync.Mutex
}

func NewSender(ctx bCtx.Ctx, cfg *SenderCfg) (Sender, error) {
	s := &senderImpl{
		clients:        make(map[domain.ChainId]*ethclient.Client),
		callTimeout:    cfg.CallTimeout,
		receiptTimeout: cfg.ReceiptTimeout,
	}
	if s.callTimeout == 0 {
		s.callTimeout = defaultCallTimeout
	}
	if s.receiptTimeout == 0 {
		s.receiptTimeout = 2 * time.Minute
	}

	pk := strings.TrimSpace(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if pk != "" {
		key, err := crypto.HexToECDSA(pk)
		if err != nil {
			return nil, xerrors.Errorf("parse signing key: %w", err)
		}
		s.key = key
		s.from = crypto.PubkeyToAddress(key.PublicKey)
	}

	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			continue
		}
		s.clients[chainId] = client
	}
	return s, nil
}

func (s *senderImpl) Configured() bool {
	return s.key != nil && len(s.clients) > 0
}

func (s *senderImpl) From() domain.Address {
	if s.key == nil {
		return ""
	}
	return domain.Address(s.from.Hex()).ToLower()
}

func (s *senderImpl) Send(ctx bCtx.Ctx, chainId domain.ChainId, to common.Address, value *big.Int, _abi abi.ABI, method string, params ...interface{}) (domain.TxHash, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{"method": method, "err": err}).Error("abi.Pack failed")
		return "", err
	}
	_, txHash, err := s.submit(ctx, chainId, &to, value, data)
	return txHash, err
}

func (s *senderImpl) DeployContract(ctx bCtx.Ctx, chainId domain.ChainId, bytecode []byte, _abi abi.ABI, args ...interface{}) (domain.Address, domain.TxHash, error) {
	ctorArgs, err := _abi.Pack("", args...)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Pack constructor failed")
		return "", "", err
	}
	data := append(append([]byte{}, bytecode...), ctorArgs...)
	addr, txHash, err := s.submit(ctx, chainId, nil, nil, data)
	if err != nil {
		return "", "", err
	}
	return domain.Address(addr.Hex()).ToLower(), txHash, nil
}

// submit signs, sends and blocks until the receipt is available. Exactly one
// ledger-mutating submission per call.
func (s *senderImpl) submit(ctx bCtx.Ctx, chainId domain.ChainId, to *common.Address, value *big.Int, data []byte) (common.Address, domain.TxHash, error) {
	if !s.Configured() {
		return common.Address{}, "", domain.ErrDeploymentNotConfigured
	}
	client, ok := s.clients[chainId]
	if !ok {
		return common.Address{}, "", domain.ErrInvalidChainId
	}
	if value == nil {
		value = domain.Big0
	}

	signed, err := s.sign(ctx, client, chainId, to, value, data)
	if err != nil {
		return common.Address{}, "", err
	}

	sendCtx, cancel := bCtx.WithTimeout(ctx, s.callTimeout)
	err = client.SendTransaction(sendCtx, signed)
	cancel()
	if err != nil {
		ctx.WithField("err", err).Warn("client.SendTransaction failed")
		return common.Address{}, "", xerrors.Errorf("%w: %v", domain.ErrLedgerUnavailable, err)
	}

	receipt, err := s.waitMined(ctx, client, signed.Hash())
	if err != nil {
		return common.Address{}, "", err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		// the chain reverted the transaction, surface it verbatim
		return common.Address{}, "", xerrors.Errorf("%w: transaction %s reverted", domain.ErrLedgerError, signed.Hash().Hex())
	}
	return receipt.ContractAddress, domain.TxHash(signed.Hash().Hex()), nil
}

func (s *senderImpl) sign(ctx bCtx.Ctx, client *ethclient.Client, chainId domain.ChainId, to *common.Address, value *big.Int, data []byte) (*types.Transaction, error) {
	// nonce acquisition and signing happen under the lock so concurrent
	// submissions from the same key cannot reuse a nonce
	s.mu.Lock()
	defer s.mu.Unlock()

	callCtx, cancel := bCtx.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	nonce, err := client.PendingNonceAt(callCtx, s.from)
	if err != nil {
		return nil, xerrors.Errorf("%w: nonce: %v", domain.ErrLedgerUnavailable, err)
	}
	gasPrice, err := client.SuggestGasPrice(callCtx)
	if err != nil {
		return nil, xerrors.Errorf("%w: gas price: %v", domain.ErrLedgerUnavailable, err)
	}
	gasLimit, err := client.EstimateGas(callCtx, ethereum.CallMsg{
		From:  s.from,
		To:    to,
		Value: value,
		Data:  data,
	})
	if err != nil {
		// estimation reruns the call, so a revert surfaces here with the
		// chain's own reason. Not a transport failure.
		return nil, xerrors.Errorf("%w: %v", domain.ErrLedgerError, err)
	}

	var tx *types.Transaction
	if to == nil {
		tx = types.NewContractCreation(nonce, value, gasLimit, gasPrice, data)
	} else {
		tx = types.NewTransaction(nonce, *to, value, gasLimit, gasPrice, data)
	}
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(big.NewInt(int64(chainId))), s.key)
	if err != nil {
		return nil, xerrors.Errorf("sign tx: %w", err)
	}
	return signed, nil
}

func (s *senderImpl) waitMined(ctx bCtx.Ctx, client *ethclient.Client, hash common.Hash) (*types.Receipt, error) {
	waitCtx, cancel := bCtx.WithTimeout(ctx, s.receiptTimeout)
	defer cancel()

	bo := backoff.NewExponential(500*time.Millisecond, 8*time.Second)
	for {
		receipt, err := client.TransactionReceipt(waitCtx, hash)
		if err == nil {
			return receipt, nil
		}
		if waitCtx.Err() != nil {
			ctx.WithField("txHash", hash.Hex()).Warn("timed out waiting for receipt")
			return nil, xerrors.Errorf("%w: receipt for %s: %v", domain.ErrLedgerUnavailable, hash.Hex(), waitCtx.Err())
		}
		bo.Backoff(waitCtx)
	}
}
