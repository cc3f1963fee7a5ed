package auction

import (
	"time"

	"github.com/auctionx/goapi/base/ctx"
	"github.com/auctionx/goapi/domain"
)

// Type identifies one of the seven auction mechanisms. The set is closed:
// adding a mechanism means a new contract, a new descriptor and new
// validation rules, not a config change.
type Type string

const (
	TypeDutch           = Type("DUTCH")
	TypeEnglish         = Type("ENGLISH")
	TypeSealedBid       = Type("SEALED_BID")
	TypeHoldToCompete   = Type("HOLD_TO_COMPETE")
	TypePlayable        = Type("PLAYABLE")
	TypeRandomSelection = Type("RANDOM_SELECTION")
	TypeOrderBook       = Type("ORDER_BOOK")
)

var AllTypes = []Type{
	TypeDutch,
	TypeEnglish,
	TypeSealedBid,
	TypeHoldToCompete,
	TypePlayable,
	TypeRandomSelection,
	TypeOrderBook,
}

func (t Type) IsValid() bool {
	for _, v := range AllTypes {
		if t == v {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusDraft     = Status("DRAFT")
	StatusActive    = Status("ACTIVE")
	StatusEnded     = Status("ENDED")
	StatusCancelled = Status("CANCELLED")
)

// Auction is the persisted record for a single auction. Prices are
// human-entered decimal strings in display units, durations are seconds.
// The record store owns these documents, this engine only reads them and
// writes back the derived addresses and the Draft -> Active transition.
type Auction struct {
	Id      string         `json:"id" bson:"id"`
	ChainId domain.ChainId `json:"chainId" bson:"chainId"`
	Type    Type           `json:"type" bson:"type"`
	Seller  domain.Address `json:"seller" bson:"seller"`

	StartPrice        string `json:"startPrice" bson:"startPrice"`
	ReservePrice      string `json:"reservePrice" bson:"reservePrice"`
	Duration          int64  `json:"duration" bson:"duration"`
	PriceDropInterval int64  `json:"priceDropInterval" bson:"priceDropInterval"`
	PriceDropAmount   string `json:"priceDropAmount" bson:"priceDropAmount"`
	BiddingTime       int64  `json:"biddingTime" bson:"biddingTime"`
	RevealTime        int64  `json:"revealTime" bson:"revealTime"`
	MinHoldAmount     string `json:"minHoldAmount" bson:"minHoldAmount"`

	ContractAddress domain.Address `json:"contractAddress" bson:"contractAddress"`
	TokenAddress    domain.Address `json:"tokenAddress" bson:"tokenAddress"`

	Status    Status    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (a *Auction) ToId() AuctionId {
	return AuctionId{Id: a.Id}
}

type AuctionId struct {
	Id string `json:"id" bson:"id"`
}

type Patchable struct {
	ContractAddress *domain.Address `json:"contractAddress" bson:"contractAddress,omitempty"`
	TokenAddress    *domain.Address `json:"tokenAddress" bson:"tokenAddress,omitempty"`
	Status          *Status         `json:"status" bson:"status,omitempty"`
	UpdatedAt       *time.Time      `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// Deployment is the outcome of deploying an auction to the chain.
// TokenAddress is set only when an auxiliary bidding token was deployed.
type Deployment struct {
	ContractAddress domain.Address `json:"contractAddress"`
	TokenAddress    domain.Address `json:"tokenAddress,omitempty"`
}

type findAllOptions struct {
	ChainId *domain.ChainId
	Type    *Type
	Seller  *domain.Address
	Status  *Status
	Offset  *int32
	Limit   *int32
}

type FindAllOptions func(*findAllOptions) error

func GetFindAllOptions(opts ...FindAllOptions) (findAllOptions, error) {
	res := findAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithChainId(chainId domain.ChainId) FindAllOptions {
	return func(options *findAllOptions) error {
		options.ChainId = &chainId
		return nil
	}
}

func WithType(t Type) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Type = &t
		return nil
	}
}

func WithSeller(seller domain.Address) FindAllOptions {
	return func(options *findAllOptions) error {
		seller = seller.ToLower()
		options.Seller = &seller
		return nil
	}
}

func WithStatus(status Status) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Status = &status
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

// SearchResult pairs a page of records with the unpaginated match count.
type SearchResult struct {
	Items []*Auction `json:"items"`
	Count int        `json:"count"`
}

type Repo interface {
	FindOne(ctx.Ctx, AuctionId) (*Auction, error)
	FindAll(ctx.Ctx, ...FindAllOptions) ([]*Auction, error)
	Count(ctx.Ctx, ...FindAllOptions) (int, error)
	Insert(ctx.Ctx, *Auction) error
	Patch(ctx.Ctx, AuctionId, Patchable) error
}

// ArtifactRepo locates compiled contract bytecode by contract name.
type ArtifactRepo interface {
	Bytecode(ctx.Ctx, string) ([]byte, error)
}

type Deployer interface {
	// Deploy submits contract creation for the record and blocks until the
	// chain confirms inclusion. Never retried internally: a failed call must
	// be retried by the caller with a fresh call.
	Deploy(ctx.Ctx, *Auction) (*Deployment, error)
}

type StateReader interface {
	Read(ctx.Ctx, domain.ChainId, domain.Address, Type) (*State, error)
	ReadBatch(ctx.Ctx, domain.ChainId, []BatchTarget) ([]*State, error)
}

type BatchTarget struct {
	Address domain.Address
	Type    Type
}

type Validator interface {
	ValidateBid(ctx.Ctx, *Auction, *BidProposal) (*ValidationResult, error)
}

type Forwarder interface {
	PlaceBid(ctx.Ctx, domain.ChainId, domain.Address, Type, *BidProposal) (domain.TxHash, error)
}

// Usecase is the full inbound surface consumed by the delivery layer.
type Usecase interface {
	Deployer
	StateReader
	Validator
	Forwarder
	Create(ctx.Ctx, *Auction) error
	Get(ctx.Ctx, AuctionId) (*Auction, error)
	List(ctx.Ctx, ...FindAllOptions) (*SearchResult, error)
	DeployAndActivate(ctx.Ctx, AuctionId) (*Deployment, error)
}
