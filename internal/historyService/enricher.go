package history

import (
	"github.com/shopspring/decimal"

	model "auction-insights/internal/models"
)

var oneHundred = decimal.NewFromInt(100)

// EnrichBids derives per-bid metrics over a time-ordered bid sequence.
// Profiles holds whatever the user directory resolved; missing entries
// get the fallback display name. The auto-bid flag is user-level: it
// marks every bid by a user who holds a standing order on the auction,
// not just the bids that order generated.
func EnrichBids(bids []model.Bid, autoBids []model.AutoBid, profiles map[string]model.UserProfile) []model.EnrichedBid {
	autoBidders := make(map[string]bool, len(autoBids))
	for _, ab := range autoBids {
		autoBidders[ab.UserID] = true
	}

	enriched := make([]model.EnrichedBid, 0, len(bids))
	for i, bid := range bids {
		eb := model.EnrichedBid{
			Bid:      bid,
			Position: i + 1,
		}

		if i > 0 {
			prev := bids[i-1]
			eb.TimeSincePrevious = bid.CreatedAt.Sub(prev.CreatedAt)
			eb.PriceChange = bid.Amount.Sub(prev.Amount)
			if !prev.Amount.IsZero() {
				eb.PriceChangePercent = eb.PriceChange.Div(prev.Amount).Mul(oneHundred).InexactFloat64()
			}
		}

		eb.IsAutoBid = autoBidders[bid.UserID]

		if profile, ok := profiles[bid.UserID]; ok {
			eb.DisplayName = profile.DisplayName
			eb.AvatarRef = profile.AvatarRef
		} else {
			eb.DisplayName = FallbackDisplayName(bid.UserID)
		}

		enriched = append(enriched, eb)
	}
	return enriched
}

// AnonymizeBids rewrites enriched bids for public consumption: masked
// display names and pool avatars derived from the user id.
func AnonymizeBids(bids []model.EnrichedBid) []model.EnrichedBid {
	out := make([]model.EnrichedBid, len(bids))
	for i, eb := range bids {
		eb.DisplayName = MaskDisplayName(eb.DisplayName)
		eb.AvatarRef = AnonymousAvatarRef(eb.UserID)
		out[i] = eb
	}
	return out
}
