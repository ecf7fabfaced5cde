package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserProfile represents a resolved directory entry for a bidder
type UserProfile struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	AvatarRef   string `json:"avatar_ref"`
}

// Bid represents a single recorded bid in an auction's history.
// Bids are immutable once recorded; this service only reads them.
type Bid struct {
	BidID     string          `json:"bid_id"`
	AuctionID string          `json:"auction_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// AutoBid represents a user's standing maximum-bid order on an auction
type AutoBid struct {
	AutoBidID string          `json:"auto_bid_id"`
	AuctionID string          `json:"auction_id"`
	UserID    string          `json:"user_id"`
	MaxAmount decimal.Decimal `json:"max_amount"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// EnrichedBid is a Bid augmented with display identity and derived
// per-bid metrics. Built transiently per request, never persisted.
type EnrichedBid struct {
	Bid
	DisplayName        string          `json:"display_name"`
	AvatarRef          string          `json:"avatar_ref"`
	IsAutoBid          bool            `json:"is_auto_bid"`
	Position           int             `json:"position"`
	TimeSincePrevious  time.Duration   `json:"time_since_previous"`
	PriceChange        decimal.Decimal `json:"price_change"`
	PriceChangePercent float64         `json:"price_change_percent"`
}

// BidHistoryStats summarizes an enriched bid set. Recomputed on every
// call; nothing here is cached.
type BidHistoryStats struct {
	TotalBids        int             `json:"total_bids"`
	TotalBidders     int             `json:"total_bidders"`
	HighestBid       decimal.Decimal `json:"highest_bid"`
	LowestBid        decimal.Decimal `json:"lowest_bid"`
	AverageBid       decimal.Decimal `json:"average_bid"`
	TotalValue       decimal.Decimal `json:"total_value"`
	BidFrequency     float64         `json:"bid_frequency"`
	CompetitionIndex float64         `json:"competition_index"`
	PriceTrend       Trend           `json:"price_trend"`
}

// Trend classifies overall price direction
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Level is a coarse three-way classification used for volatility and
// bidding intensity
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// TrendReport classifies trend, volatility and intensity for one
// auction and flags detected bidding patterns
type TrendReport struct {
	OverallTrend     Trend `json:"overall_trend"`
	Volatility       Level `json:"volatility"`
	BiddingIntensity Level `json:"bidding_intensity"`
	HasBidWars       bool  `json:"has_bid_wars"`
	HasSniping       bool  `json:"has_sniping"`
	HasEarlyBidding  bool  `json:"has_early_bidding"`
	HasLateBidding   bool  `json:"has_late_bidding"`
}

// BidPage is one page of an auction's bid history. Cursor is opaque to
// callers and empty when this page was non-full.
type BidPage struct {
	Items   []EnrichedBid `json:"items"`
	Cursor  string        `json:"cursor,omitempty"`
	HasMore bool          `json:"has_more"`
}
