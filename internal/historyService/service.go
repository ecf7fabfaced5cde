package history

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"auction-insights/internal/config"
	"auction-insights/internal/historyerrors"
	model "auction-insights/internal/models"
	"auction-insights/internal/repository"
	"auction-insights/utils"
)

// resolveConcurrency bounds parallel user-directory lookups per request
const resolveConcurrency = 8

// OwnDisplayName replaces the display name when a user views their own
// bid history
const OwnDisplayName = "You"

// HistoryService exposes the bid-history read and analytics operations.
// Everything here is a pure function of the collaborator reads; no
// derived state is kept between calls.
type HistoryService struct {
	bids     repository.BidStore
	autoBids repository.AutoBidStore
	users    repository.UserDirectory
	analyzer *TrendAnalyzer
	cfg      *config.Config
}

// NewHistoryService creates a new HistoryService instance
func NewHistoryService(bids repository.BidStore, autoBids repository.AutoBidStore, users repository.UserDirectory, cfg *config.Config) *HistoryService {
	return &HistoryService{
		bids:     bids,
		autoBids: autoBids,
		users:    users,
		analyzer: NewTrendAnalyzer(cfg),
		cfg:      cfg,
	}
}

// GetBidHistory returns up to limit enriched bids for an auction,
// anonymized for public view, together with summary stats over the
// returned set. Zero bids is a valid empty result.
func (s *HistoryService) GetBidHistory(ctx context.Context, auctionID string, limit int) ([]model.EnrichedBid, model.BidHistoryStats, error) {
	if auctionID == "" {
		return nil, model.BidHistoryStats{}, fmt.Errorf("service: %w - empty auction ID", historyerrors.ErrInvalidQuery)
	}
	limit = s.clampLimit(limit)

	bids, err := s.bids.FetchBids(ctx, auctionID, limit)
	if err != nil {
		return nil, model.BidHistoryStats{}, fmt.Errorf("service: failed to fetch bids for auction %s: %w", auctionID, err)
	}

	enriched, err := s.enrich(ctx, auctionID, bids)
	if err != nil {
		return nil, model.BidHistoryStats{}, err
	}

	public := AnonymizeBids(enriched)
	return public, ComputeStats(public), nil
}

// GetPaginatedBidHistory returns one page of an auction's bid history.
// Stats are computed over the returned page only, not the whole
// auction. Positions and deltas are likewise page-relative.
func (s *HistoryService) GetPaginatedBidHistory(ctx context.Context, auctionID string, pageSize int, cursor string) (model.BidPage, model.BidHistoryStats, error) {
	if auctionID == "" {
		return model.BidPage{}, model.BidHistoryStats{}, fmt.Errorf("service: %w - empty auction ID", historyerrors.ErrInvalidQuery)
	}
	pageSize = s.clampPageSize(pageSize)

	bids, err := s.bids.FetchBidsPage(ctx, auctionID, pageSize, cursor)
	if err != nil {
		return model.BidPage{}, model.BidHistoryStats{}, fmt.Errorf("service: failed to fetch bid page for auction %s: %w", auctionID, err)
	}

	enriched, err := s.enrich(ctx, auctionID, bids)
	if err != nil {
		return model.BidPage{}, model.BidHistoryStats{}, err
	}

	public := AnonymizeBids(enriched)
	return BuildPage(public, pageSize), ComputeStats(public), nil
}

// GetBidTrends classifies trend, volatility, intensity and bidding
// patterns for an auction over a bounded sample of its history.
func (s *HistoryService) GetBidTrends(ctx context.Context, auctionID string) (model.TrendReport, error) {
	if auctionID == "" {
		return model.TrendReport{}, fmt.Errorf("service: %w - empty auction ID", historyerrors.ErrInvalidQuery)
	}

	// Fetch the whole history and let the analyzer keep the most
	// recent sample: a head-limited fetch would pin the report to the
	// auction's opening window and blind the closing-span patterns.
	bids, err := s.bids.FetchBids(ctx, auctionID, 0)
	if err != nil {
		return model.TrendReport{}, fmt.Errorf("service: failed to fetch bids for auction %s: %w", auctionID, err)
	}

	// The analyzer only reads amounts and timestamps, so skip the
	// directory round trips entirely.
	return s.analyzer.Analyze(EnrichBids(bids, nil, nil)), nil
}

// GetUserBidHistory returns one user's own bids across auctions, most
// recent first, with their own identity shown. There is no per-user
// bid index, so this scans auction by auction under a hard cap; at
// scale it is best-effort, not guaranteed complete.
func (s *HistoryService) GetUserBidHistory(ctx context.Context, userID string, limit int) ([]model.EnrichedBid, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", historyerrors.ErrInvalidQuery)
	}
	limit = s.clampLimit(limit)

	auctionIDs, err := s.bids.ListAuctionIDs(ctx, s.cfg.History.MaxAuctionsScan)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions for user %s: %w", userID, err)
	}

	var collected []model.Bid
	var scanned []string
	for _, auctionID := range auctionIDs {
		bids, err := s.bids.FetchUserBids(ctx, auctionID, userID, limit)
		if err != nil {
			return nil, fmt.Errorf("service: failed to fetch bids for user %s in auction %s: %w", userID, auctionID, err)
		}
		if len(bids) > 0 {
			collected = append(collected, bids...)
			scanned = append(scanned, auctionID)
		}
		if len(collected) >= limit {
			break
		}
	}

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].CreatedAt.Before(collected[j].CreatedAt)
	})

	// Cap to the most recent limit bids before enriching, so positions
	// run 1..N over the returned set and the oldest kept bid's deltas
	// do not reference a dropped bid.
	if len(collected) > limit {
		collected = collected[len(collected)-limit:]
	}

	autoBids := s.fetchAutoBidsForAuctions(ctx, scanned)
	profiles := s.resolveProfiles(ctx, []string{userID})
	enriched := EnrichBids(collected, autoBids, profiles)

	// Most recent first, own identity shown.
	out := make([]model.EnrichedBid, 0, len(enriched))
	for i := len(enriched) - 1; i >= 0; i-- {
		eb := enriched[i]
		eb.DisplayName = OwnDisplayName
		out = append(out, eb)
	}
	return out, nil
}

// enrich cross-references auto-bids and resolved profiles for one
// auction's bids. Auto-bid and profile lookups degrade gracefully;
// only the bid fetch itself is fatal to a request.
func (s *HistoryService) enrich(ctx context.Context, auctionID string, bids []model.Bid) ([]model.EnrichedBid, error) {
	if len(bids) == 0 {
		return []model.EnrichedBid{}, nil
	}

	autoBids := s.fetchAutoBidsForAuctions(ctx, []string{auctionID})

	distinct := make([]string, 0, len(bids))
	seen := make(map[string]bool, len(bids))
	for _, b := range bids {
		if !seen[b.UserID] {
			seen[b.UserID] = true
			distinct = append(distinct, b.UserID)
		}
	}

	return EnrichBids(bids, autoBids, s.resolveProfiles(ctx, distinct)), nil
}

// fetchAutoBidsForAuctions gathers standing orders, treating a failed
// lookup as "no auto-bids" so the history itself still renders
func (s *HistoryService) fetchAutoBidsForAuctions(ctx context.Context, auctionIDs []string) []model.AutoBid {
	var all []model.AutoBid
	for _, auctionID := range auctionIDs {
		autoBids, err := s.autoBids.FetchAutoBids(ctx, auctionID)
		if err != nil {
			utils.Warn("service: auto-bid lookup failed, flags degraded", map[string]any{
				"auction_id": auctionID,
				"error":      err.Error(),
			})
			continue
		}
		all = append(all, autoBids...)
	}
	return all
}

// resolveProfiles looks up distinct user ids concurrently. A failed
// resolution is logged and omitted; the enricher substitutes the
// fallback display name.
func (s *HistoryService) resolveProfiles(ctx context.Context, userIDs []string) map[string]model.UserProfile {
	profiles := make(map[string]model.UserProfile, len(userIDs))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveConcurrency)
	for _, userID := range userIDs {
		userID := userID
		g.Go(func() error {
			profile, err := s.users.ResolveUser(ctx, userID)
			if err != nil {
				utils.Warn("service: user resolution failed, using fallback name", map[string]any{
					"user_id": userID,
					"error":   err.Error(),
				})
				return nil
			}
			mu.Lock()
			profiles[userID] = profile
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	return profiles
}

func (s *HistoryService) clampLimit(limit int) int {
	if limit <= 0 {
		return s.cfg.History.DefaultLimit
	}
	return limit
}

func (s *HistoryService) clampPageSize(pageSize int) int {
	if pageSize <= 0 {
		return s.cfg.History.DefaultLimit
	}
	if pageSize > s.cfg.History.MaxPageSize {
		return s.cfg.History.MaxPageSize
	}
	return pageSize
}
