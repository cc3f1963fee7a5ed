// Package abi registers the fixed read/write interfaces of the seven auction
// mechanism contracts plus the auxiliary mintable token. Each ABI also
// carries the constructor signature so deployment can pack creation args.
package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var (
	DutchAuctionABI           abi.ABI
	EnglishAuctionABI         abi.ABI
	SealedBidAuctionABI       abi.ABI
	HoldToCompeteAuctionABI   abi.ABI
	PlayableAuctionABI        abi.ABI
	RandomSelectionAuctionABI abi.ABI
	OrderBookAuctionABI       abi.ABI
	MintableTokenABI          abi.ABI
)

var dutchAuctionABIJson = `[{"type":"constructor","inputs":[{"type":"uint256","name":"_startPrice"},{"type":"uint256","name":"_reservePrice"},{"type":"uint256","name":"_duration"},{"type":"uint256","name":"_priceDropInterval"}]},{"type":"function","name":"getCurrentPrice","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"ended","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"bool"}]},{"type":"function","name":"winner","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"address"}]},{"type":"function","name":"seller","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"address"}]},{"type":"function","name":"startPrice","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"reservePrice","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"startTime","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"duration","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"buy","stateMutability":"payable","inputs":[],"outputs":[]}]`

var englishAuctionABIJson = `[{"type":"constructor","inputs":[{"type":"uint256","name":"_biddingTime"},{"type":"uint256","name":"_reservePrice"}]},{"type":"function","name":"auctionEndTime","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"highestBid","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"highestBidder","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"address"}]},{"type":"function","name":"ended","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"bool"}]},{"type":"function","name":"seller","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"address"}]},{"type":"function","name":"bid","stateMutability":"payable","inputs":[],"outputs":[]}]`

var sealedBidAuctionABIJson = `[{"type":"constructor","inputs":[{"type":"uint256","name":"_biddingTime"},{"type":"uint256","name":"_revealTime"}]},{"type":"function","name":"biddingEnd","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"revealEnd","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"auctionEnded","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"bool"}]},{"type":"function","name":"highestBidder","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"address"}]},{"type":"function","name":"highestBid","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"auctioneer","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"address"}]},{"type":"function","name":"bid","stateMutability":"payable","inputs":[{"type":"bytes32","name":"_blindedBid"}],"outputs":[]}]`

var holdToCompeteAuctionABIJson = `[{"type":"constructor","inputs":[{"type":"address","name":"_biddingToken"},{"type":"uint256","name":"_duration"},{"type":"uint256","name":"_minHoldAmount"}]},{"type":"function","name":"auctionEndTime","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"highestBidder","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"address"}]},{"type":"function","name":"highestBid","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"minHoldAmount","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"biddingToken","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"address"}]},{"type":"function","name":"seller","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"address"}]},{"type":"function","name":"placeBid","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"_amount"}],"outputs":[]}]`

var playableAuctionABIJson = `[{"type":"constructor","inputs":[{"type":"uint256","name":"_startPrice"},{"type":"uint256","name":"_reservePrice"},{"type":"uint256","name":"_duration"},{"type":"uint256","name":"_priceDropInterval"},{"type":"uint256","name":"_priceDropAmount"}]},{"type":"function","name":"getCurrentPrice","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"highestBidder","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"address"}]},{"type":"function","name":"highestBid","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"auctionEnded","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"bool"}]},{"type":"function","name":"startTime","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"endTime","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"placeBid","stateMutability":"payable","inputs":[],"outputs":[]}]`

var randomSelectionAuctionABIJson = `[{"type":"constructor","inputs":[{"type":"uint256","name":"_duration"}]},{"type":"function","name":"auctionEndTime","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"auctionEnded","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"bool"}]},{"type":"function","name":"owner","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"address"}]},{"type":"function","name":"placeBid","stateMutability":"payable","inputs":[],"outputs":[]}]`

var orderBookAuctionABIJson = `[{"type":"constructor","inputs":[{"type":"uint256","name":"_duration"}]},{"type":"function","name":"auctionEndTime","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"auctionEnded","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"bool"}]},{"type":"function","name":"clearingPrice","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"admin","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"address"}]},{"type":"function","name":"placeBuyOrder","stateMutability":"payable","inputs":[{"type":"uint256","name":"_price"},{"type":"uint256","name":"_quantity"}],"outputs":[]},{"type":"function","name":"placeSellOrder","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"_price"},{"type":"uint256","name":"_quantity"}],"outputs":[]}]`

var mintableTokenABIJson = `[{"type":"constructor","inputs":[{"type":"string","name":"_name"},{"type":"string","name":"_symbol"},{"type":"uint256","name":"_initialSupply"}]},{"type":"function","name":"balanceOf","constant":true,"stateMutability":"view","inputs":[{"type":"address","name":"_owner"}],"outputs":[{"type":"uint256"}]},{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"type":"address","name":"_to"},{"type":"uint256","name":"_amount"}],"outputs":[]}]`

func mustParse(name, json string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(json))
	if err != nil {
		panic("Failed to parse " + name + " abi")
	}
	return parsed
}

func init() {
	DutchAuctionABI = mustParse("DutchAuction", dutchAuctionABIJson)
	EnglishAuctionABI = mustParse("EnglishAuction", englishAuctionABIJson)
	SealedBidAuctionABI = mustParse("SealedBidAuction", sealedBidAuctionABIJson)
	HoldToCompeteAuctionABI = mustParse("HoldToCompeteAuction", holdToCompeteAuctionABIJson)
	PlayableAuctionABI = mustParse("PlayableAuction", playableAuctionABIJson)
	RandomSelectionAuctionABI = mustParse("RandomSelectionAuction", randomSelectionAuctionABIJson)
	OrderBookAuctionABI = mustParse("OrderBookAuction", orderBookAuctionABIJson)
	MintableTokenABI = mustParse("MintableToken", mintableTokenABIJson)
}
