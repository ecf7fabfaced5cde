package history

import (
	"github.com/shopspring/decimal"

	model "auction-insights/internal/models"
)

// statsTrendThresholdPct is the ±% band outside which the summary
// price trend leaves "stable". The trend analyzer deliberately uses a
// wider ±10% band for its own overall-trend field; the two outputs
// have different sensitivity and must not be unified quietly.
const statsTrendThresholdPct = 5.0

// ComputeStats summarizes an enriched bid set. An empty input is the
// documented empty state (all zeros, stable trend), not an error.
func ComputeStats(bids []model.EnrichedBid) model.BidHistoryStats {
	stats := model.BidHistoryStats{PriceTrend: model.TrendStable}
	if len(bids) == 0 {
		return stats
	}

	bidders := make(map[string]bool, len(bids))
	highest := bids[0].Amount
	lowest := bids[0].Amount
	total := decimal.Zero

	for _, b := range bids {
		bidders[b.UserID] = true
		total = total.Add(b.Amount)
		if b.Amount.GreaterThan(highest) {
			highest = b.Amount
		}
		if b.Amount.LessThan(lowest) {
			lowest = b.Amount
		}
	}

	n := len(bids)
	stats.TotalBids = n
	stats.TotalBidders = len(bidders)
	stats.HighestBid = highest
	stats.LowestBid = lowest
	stats.TotalValue = total
	stats.AverageBid = total.Div(decimal.NewFromInt(int64(n)))
	stats.CompetitionIndex = float64(len(bidders)) / float64(n)

	// Bid frequency uses a 1-hour floor on the observed span; without
	// it a burst of bids inside one hour would divide by ~zero. Short
	// auctions therefore report "bids in the first hour", not a true
	// hourly rate.
	hours := bids[n-1].CreatedAt.Sub(bids[0].CreatedAt).Hours()
	if hours < 1 {
		hours = 1
	}
	stats.BidFrequency = float64(n) / hours

	first := bids[0].Amount
	last := bids[n-1].Amount
	if n > 1 && !first.IsZero() {
		pct := last.Sub(first).Div(first).Mul(oneHundred).InexactFloat64()
		switch {
		case pct > statsTrendThresholdPct:
			stats.PriceTrend = model.TrendUp
		case pct < -statsTrendThresholdPct:
			stats.PriceTrend = model.TrendDown
		}
	}

	return stats
}
