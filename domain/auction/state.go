package auction

import (
	"math/big"

	"github.com/auctionx/goapi/domain"
)

// State is a point-in-time snapshot of a deployed auction contract. Only the
// field set for the record's mechanism is populated. Snapshots are read fresh
// for every validation decision and never cached across one: a stale highest
// bid would let an already-outbid amount through.
type State struct {
	Type Type `json:"type"`

	// Block the snapshot was pinned to. Every field of one snapshot is read
	// at this height, so no field can reflect a newer block than another.
	BlockNumber domain.BlockNumber `json:"blockNumber"`

	// BlockTime is the pinned block's timestamp in unix seconds. Used as
	// "now" for the timing rules so that validation agrees with what the
	// contract itself would observe.
	BlockTime int64 `json:"blockTime"`

	Dutch           *DutchState           `json:"dutch,omitempty"`
	English         *EnglishState         `json:"english,omitempty"`
	SealedBid       *SealedBidState       `json:"sealedBid,omitempty"`
	HoldToCompete   *HoldToCompeteState   `json:"holdToCompete,omitempty"`
	Playable        *PlayableState        `json:"playable,omitempty"`
	RandomSelection *RandomSelectionState `json:"randomSelection,omitempty"`
	OrderBook       *OrderBookState       `json:"orderBook,omitempty"`
}

type DutchState struct {
	CurrentPrice *big.Int       `json:"-"`
	Ended        bool           `json:"ended"`
	Winner       domain.Address `json:"winner"`
	Seller       domain.Address `json:"seller"`
	StartPrice   *big.Int       `json:"-"`
	ReservePrice *big.Int       `json:"-"`
	StartTime    int64          `json:"startTime"`
	Duration     int64          `json:"duration"`
}

type EnglishState struct {
	AuctionEndTime int64          `json:"auctionEndTime"`
	HighestBid     *big.Int       `json:"-"`
	HighestBidder  domain.Address `json:"highestBidder"`
	Ended          bool           `json:"ended"`
	Seller         domain.Address `json:"seller"`
}

type SealedBidState struct {
	BiddingEnd    int64          `json:"biddingEnd"`
	RevealEnd     int64          `json:"revealEnd"`
	AuctionEnded  bool           `json:"auctionEnded"`
	HighestBidder domain.Address `json:"highestBidder"`
	HighestBid    *big.Int       `json:"-"`
	Auctioneer    domain.Address `json:"auctioneer"`
}

type HoldToCompeteState struct {
	AuctionEndTime int64          `json:"auctionEndTime"`
	HighestBidder  domain.Address `json:"highestBidder"`
	HighestBid     *big.Int       `json:"-"`
	MinHoldAmount  *big.Int       `json:"-"`
	BiddingToken   domain.Address `json:"biddingToken"`
	Seller         domain.Address `json:"seller"`
}

type PlayableState struct {
	CurrentPrice  *big.Int       `json:"-"`
	HighestBidder domain.Address `json:"highestBidder"`
	HighestBid    *big.Int       `json:"-"`
	AuctionEnded  bool           `json:"auctionEnded"`
	StartTime     int64          `json:"startTime"`
	EndTime       int64          `json:"endTime"`
}

type RandomSelectionState struct {
	AuctionEndTime int64          `json:"auctionEndTime"`
	AuctionEnded   bool           `json:"auctionEnded"`
	Owner          domain.Address `json:"owner"`
}

type OrderBookState struct {
	AuctionEndTime int64          `json:"auctionEndTime"`
	AuctionEnded   bool           `json:"auctionEnded"`
	ClearingPrice  *big.Int       `json:"-"`
	Admin          domain.Address `json:"admin"`
}

func bigStr(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

// Display renders the snapshot for the API boundary. Every numeric on-chain
// value becomes a decimal string, large values never pass through float.
func (s *State) Display() map[string]interface{} {
	out := map[string]interface{}{
		"type":        s.Type,
		"blockNumber": uint64(s.BlockNumber),
	}
	switch {
	case s.Dutch != nil:
		d := s.Dutch
		out["currentPrice"] = bigStr(d.CurrentPrice)
		out["ended"] = d.Ended
		out["winner"] = d.Winner
		out["seller"] = d.Seller
		out["startPrice"] = bigStr(d.StartPrice)
		out["reservePrice"] = bigStr(d.ReservePrice)
		out["startTime"] = d.StartTime
		out["duration"] = d.Duration
	case s.English != nil:
		e := s.English
		out["auctionEndTime"] = e.AuctionEndTime
		out["highestBid"] = bigStr(e.HighestBid)
		out["highestBidder"] = e.HighestBidder
		out["ended"] = e.Ended
		out["seller"] = e.Seller
	case s.SealedBid != nil:
		sb := s.SealedBid
		out["biddingEnd"] = sb.BiddingEnd
		out["revealEnd"] = sb.RevealEnd
		out["auctionEnded"] = sb.AuctionEnded
		out["highestBidder"] = sb.HighestBidder
		out["highestBid"] = bigStr(sb.HighestBid)
		out["auctioneer"] = sb.Auctioneer
	case s.HoldToCompete != nil:
		h := s.HoldToCompete
		out["auctionEndTime"] = h.AuctionEndTime
		out["highestBidder"] = h.HighestBidder
		out["highestBid"] = bigStr(h.HighestBid)
		out["minHoldAmount"] = bigStr(h.MinHoldAmount)
		out["biddingToken"] = h.BiddingToken
		out["seller"] = h.Seller
	case s.Playable != nil:
		p := s.Playable
		out["currentPrice"] = bigStr(p.CurrentPrice)
		out["highestBidder"] = p.HighestBidder
		out["highestBid"] = bigStr(p.HighestBid)
		out["auctionEnded"] = p.AuctionEnded
		out["startTime"] = p.StartTime
		out["endTime"] = p.EndTime
	case s.RandomSelection != nil:
		r := s.RandomSelection
		out["auctionEndTime"] = r.AuctionEndTime
		out["auctionEnded"] = r.AuctionEnded
		out["owner"] = r.Owner
	case s.OrderBook != nil:
		o := s.OrderBook
		out["auctionEndTime"] = o.AuctionEndTime
		out["auctionEnded"] = o.AuctionEnded
		out["clearingPrice"] = bigStr(o.ClearingPrice)
		out["admin"] = o.Admin
	}
	return out
}
