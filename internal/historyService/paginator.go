package history

import (
	model "auction-insights/internal/models"
)

// BuildPage wraps one fetched page of enriched bids. The cursor is the
// id of the page's last item and is only set on a full page; a partial
// page is the end of the sequence. Under an append-only store, walking
// pages from an empty cursor until HasMore is false yields every bid
// exactly once in timestamp order. Backdated inserts would break that,
// which the store contract rules out.
func BuildPage(items []model.EnrichedBid, pageSize int) model.BidPage {
	page := model.BidPage{Items: items}
	if len(items) == pageSize && pageSize > 0 {
		page.Cursor = items[len(items)-1].BidID
		page.HasMore = true
	}
	return page
}
