package helpers

import (
	"time"

	model "auction-insights/internal/models"
)

// Request/Response DTOs
type EnrichedBidResponse struct {
	BidID              string  `json:"bid_id"`
	AuctionID          string  `json:"auction_id"`
	UserID             string  `json:"user_id"`
	Amount             string  `json:"amount"`
	CreatedAt          string  `json:"created_at"`
	DisplayName        string  `json:"display_name"`
	AvatarRef          string  `json:"avatar_ref"`
	IsAutoBid          bool    `json:"is_auto_bid"`
	Position           int     `json:"position"`
	TimeSincePrevious  string  `json:"time_since_previous"`
	PriceChange        string  `json:"price_change"`
	PriceChangePercent float64 `json:"price_change_percent"`
}

type StatsResponse struct {
	TotalBids        int     `json:"total_bids"`
	TotalBidders     int     `json:"total_bidders"`
	HighestBid       string  `json:"highest_bid"`
	LowestBid        string  `json:"lowest_bid"`
	AverageBid       string  `json:"average_bid"`
	TotalValue       string  `json:"total_value"`
	BidFrequency     float64 `json:"bid_frequency"`
	CompetitionIndex float64 `json:"competition_index"`
	PriceTrend       string  `json:"price_trend"`
}

type BidHistoryResponse struct {
	Bids  []EnrichedBidResponse `json:"bids"`
	Stats StatsResponse         `json:"stats"`
}

// PagedBidHistoryResponse scopes its stats to the returned page, not
// the whole auction
type PagedBidHistoryResponse struct {
	Items   []EnrichedBidResponse `json:"items"`
	Cursor  string                `json:"cursor,omitempty"`
	HasMore bool                  `json:"has_more"`
	Stats   StatsResponse         `json:"stats"`
}

type TrendReportResponse struct {
	OverallTrend     string `json:"overall_trend"`
	Volatility       string `json:"volatility"`
	BiddingIntensity string `json:"bidding_intensity"`
	HasBidWars       bool   `json:"has_bid_wars"`
	HasSniping       bool   `json:"has_sniping"`
	HasEarlyBidding  bool   `json:"has_early_bidding"`
	HasLateBidding   bool   `json:"has_late_bidding"`
}

// ToBidResponse converts an enriched bid to its wire shape
func ToBidResponse(eb model.EnrichedBid) EnrichedBidResponse {
	return EnrichedBidResponse{
		BidID:              eb.BidID,
		AuctionID:          eb.AuctionID,
		UserID:             eb.UserID,
		Amount:             eb.Amount.String(),
		CreatedAt:          eb.CreatedAt.UTC().Format(time.RFC3339),
		DisplayName:        eb.DisplayName,
		AvatarRef:          eb.AvatarRef,
		IsAutoBid:          eb.IsAutoBid,
		Position:           eb.Position,
		TimeSincePrevious:  eb.TimeSincePrevious.String(),
		PriceChange:        eb.PriceChange.String(),
		PriceChangePercent: eb.PriceChangePercent,
	}
}

// ToBidResponses converts a bid list, never returning nil so the JSON
// body carries an empty array rather than null
func ToBidResponses(bids []model.EnrichedBid) []EnrichedBidResponse {
	out := make([]EnrichedBidResponse, 0, len(bids))
	for _, eb := range bids {
		out = append(out, ToBidResponse(eb))
	}
	return out
}

// ToStatsResponse converts stats to their wire shape
func ToStatsResponse(s model.BidHistoryStats) StatsResponse {
	return StatsResponse{
		TotalBids:        s.TotalBids,
		TotalBidders:     s.TotalBidders,
		HighestBid:       s.HighestBid.String(),
		LowestBid:        s.LowestBid.String(),
		AverageBid:       s.AverageBid.String(),
		TotalValue:       s.TotalValue.String(),
		BidFrequency:     s.BidFrequency,
		CompetitionIndex: s.CompetitionIndex,
		PriceTrend:       string(s.PriceTrend),
	}
}

// ToTrendResponse converts a trend report to its wire shape
func ToTrendResponse(r model.TrendReport) TrendReportResponse {
	return TrendReportResponse{
		OverallTrend:     string(r.OverallTrend),
		Volatility:       string(r.Volatility),
		BiddingIntensity: string(r.BiddingIntensity),
		HasBidWars:       r.HasBidWars,
		HasSniping:       r.HasSniping,
		HasEarlyBidding:  r.HasEarlyBidding,
		HasLateBidding:   r.HasLateBidding,
	}
}
