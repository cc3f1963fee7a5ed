package http

import (
	"errors"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/auctionx/goapi/base/ctx"
	"github.com/auctionx/goapi/base/delivery"
	"github.com/auctionx/goapi/base/metrics"
	"github.com/auctionx/goapi/base/wei"
	"github.com/auctionx/goapi/domain"
	"github.com/auctionx/goapi/domain/auction"
	"github.com/auctionx/goapi/domain/orderbook"
	"github.com/auctionx/goapi/middleware"
)

var met metrics.Service

type handler struct {
	auction auction.Usecase
}

func New(e *echo.Echo, auction auction.Usecase) {
	met = metrics.New("auction")

	h := &handler{auction}

	gs := e.Group("/auctions")

	gs.GET("", h.list)

	gs.POST("", h.create)

	gs.GET("/states", h.getStates)

	gr := e.Group("/auctions/:id")

	gr.GET("", h.get)

	gr.POST("/deploy", h.deploy)

	gr.POST("/validate-bid", h.validateBid)

	gr.POST("/bid", h.bid)

	g := e.Group("/auction/:contractAddress")

	g.GET("/state", h.getState, middleware.IsValidAddress("contractAddress"), middleware.CacheHttp(5*time.Second))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &auction.Auction{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.Create(ctx, p); err != nil {
		met.BumpSum("create.err", 1)
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, p)
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ChainId *domain.ChainId `query:"chainId"`
		Type    *auction.Type   `query:"type"`
		Seller  *domain.Address `query:"seller"`
		Status  *auction.Status `query:"status"`
		Offset  int32           `query:"offset"`
		Limit   int32           `query:"limit"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []auction.FindAllOptions{}
	if p.ChainId != nil {
		opts = append(opts, auction.WithChainId(*p.ChainId))
	}
	if p.Type != nil {
		if !p.Type.IsValid() {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, "unknown auction type")
		}
		opts = append(opts, auction.WithType(*p.Type))
	}
	if p.Seller != nil {
		opts = append(opts, auction.WithSeller(*p.Seller))
	}
	if p.Status != nil {
		opts = append(opts, auction.WithStatus(*p.Status))
	}
	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, auction.WithPagination(p.Offset, p.Limit))
	}

	res, err := h.auction.List(ctx, opts...)
	if err != nil {
		met.BumpSum("list.err", 1)
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	rec, err := h.auction.Get(ctx, auction.AuctionId{Id: c.Param("id")})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, rec)
}

func (h *handler) deploy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	deployment, err := h.auction.DeployAndActivate(ctx, auction.AuctionId{Id: c.Param("id")})
	if err != nil {
		met.BumpSum("deploy.err", 1)
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, deployment)
}

// bidPayload carries every per-mechanism bid field. Numeric values are
// strings: a value containing a decimal point is taken in display units,
// a bare integer is taken in base units.
type bidPayload struct {
	Amount      string `json:"amount"`
	BlindedBid  string `json:"blindedBid"`
	Deposit     string `json:"deposit"`
	Side        string `json:"side"`
	Price       string `json:"price"`
	Quantity    string `json:"quantity"`
	LockedValue string `json:"lockedValue"`
}

func (h *handler) validateBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	rec, proposal, err := h.bindProposal(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.auction.ValidateBid(ctx, rec, proposal)
	if err != nil {
		met.BumpSum("validate.err", 1)
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	if !res.Valid {
		met.BumpSum("validate.rejected", 1, "reason", string(res.Reason))
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) bid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	rec, proposal, err := h.bindProposal(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.auction.ValidateBid(ctx, rec, proposal)
	if err != nil {
		met.BumpSum("bid.validate.err", 1)
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	if !res.Valid {
		met.BumpSum("bid.rejected", 1, "reason", string(res.Reason))
		return delivery.MakeJsonResp(c, http.StatusUnprocessableEntity, res)
	}
	if res.OffChain {
		// nothing to forward, the acceptance is the whole outcome
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}

	txHash, err := h.auction.PlaceBid(ctx, rec.ChainId, rec.ContractAddress, rec.Type, proposal)
	if err != nil {
		met.BumpSum("bid.forward.err", 1)
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]interface{}{
		"valid":  true,
		"txHash": txHash,
	})
}

func (h *handler) getState(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ChainId domain.ChainId `query:"chainId"`
		Type    auction.Type   `query:"type"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if !p.Type.IsValid() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "unknown auction type")
	}

	state, err := h.auction.Read(ctx, p.ChainId, domain.Address(c.Param("contractAddress")), p.Type)
	if err != nil {
		met.BumpSum("state.err", 1)
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, state.Display())
}

func (h *handler) getStates(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ChainId   domain.ChainId `query:"chainId"`
		Addresses []string       `query:"addresses"`
		Types     []auction.Type `query:"types"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if len(p.Addresses) == 0 || len(p.Addresses) != len(p.Types) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "addresses and types must pair up")
	}

	targets := make([]auction.BatchTarget, len(p.Addresses))
	for i, addr := range p.Addresses {
		if !p.Types[i].IsValid() {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, "unknown auction type")
		}
		targets[i] = auction.BatchTarget{Address: domain.Address(addr), Type: p.Types[i]}
	}

	states, err := h.auction.ReadBatch(ctx, p.ChainId, targets)
	if err != nil {
		met.BumpSum("states.err", 1)
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}

	out := make([]map[string]interface{}, len(states))
	for i, s := range states {
		if s != nil {
			out[i] = s.Display()
		}
	}
	return delivery.MakeJsonResp(c, http.StatusOK, out)
}

func (h *handler) bindProposal(c echo.Context) (*auction.Auction, *auction.BidProposal, error) {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := bidPayload{}
	if err := c.Bind(&p); err != nil {
		return nil, nil, err
	}

	rec, err := h.auction.Get(ctx, auction.AuctionId{Id: c.Param("id")})
	if err != nil {
		return nil, nil, err
	}

	proposal := &auction.BidProposal{BlindedBid: p.BlindedBid}
	if proposal.Amount, err = parseAmount(p.Amount); err != nil {
		return nil, nil, err
	}
	if proposal.Deposit, err = parseAmount(p.Deposit); err != nil {
		return nil, nil, err
	}

	if rec.Type == auction.TypeOrderBook {
		order := &orderbook.Order{Side: orderbook.Side(p.Side)}
		if order.Price, err = parseAmount(p.Price); err != nil {
			return nil, nil, err
		}
		if order.Quantity, err = parseUnits(p.Quantity); err != nil {
			return nil, nil, err
		}
		proposal.Order = order
		if proposal.Amount == nil {
			if proposal.Amount, err = parseAmount(p.LockedValue); err != nil {
				return nil, nil, err
			}
		}
	}
	return rec, proposal, nil
}

// parseAmount takes display units when the string carries a decimal point
// and base units otherwise. Empty means absent.
func parseAmount(s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	if strings.Contains(s, ".") {
		return wei.Parse(s)
	}
	return wei.ParseBaseUnits(s)
}

func parseUnits(s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	return wei.ParseBaseUnits(s)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidParameters),
		errors.Is(err, domain.ErrUnknownAuctionType),
		errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDeploymentNotConfigured),
		errors.Is(err, domain.ErrArtifactMissing),
		errors.Is(err, domain.ErrAbiUnavailable):
		return http.StatusFailedDependency
	case errors.Is(err, domain.ErrLedgerUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
