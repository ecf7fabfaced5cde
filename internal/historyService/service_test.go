package history

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"auction-insights/internal/config"
	"auction-insights/internal/historyerrors"
	model "auction-insights/internal/models"
	"auction-insights/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type serviceMocks struct {
	bids     *repository.MockBidStore
	autoBids *repository.MockAutoBidStore
	users    *repository.MockUserDirectory
}

func newServiceWithMocks(t *testing.T) (*HistoryService, serviceMocks) {
	return newServiceWithMocksConfig(t, config.Default())
}

func newServiceWithMocksConfig(t *testing.T, cfg *config.Config) (*HistoryService, serviceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := serviceMocks{
		bids:     repository.NewMockBidStore(ctrl),
		autoBids: repository.NewMockAutoBidStore(ctrl),
		users:    repository.NewMockUserDirectory(ctrl),
	}
	return NewHistoryService(m.bids, m.autoBids, m.users, cfg), m
}

// Tests GetBidHistory
func TestHistoryService_GetBidHistory(t *testing.T) {
	base := time.Now().UTC()
	ctx := context.Background()

	t.Run("anonymized_history_with_stats", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.bids.EXPECT().FetchBids(gomock.Any(), "auction1", 50).Return(exampleBids(base), nil)
		m.autoBids.EXPECT().FetchAutoBids(gomock.Any(), "auction1").Return([]model.AutoBid{
			{AutoBidID: "ab1", AuctionID: "auction1", UserID: "user2", MaxAmount: decimal.NewFromInt(500)},
		}, nil)
		m.users.EXPECT().ResolveUser(gomock.Any(), "user1").Return(model.UserProfile{UserID: "user1", DisplayName: "Alice Carter"}, nil)
		m.users.EXPECT().ResolveUser(gomock.Any(), "user2").Return(model.UserProfile{UserID: "user2", DisplayName: "Bob Nguyen"}, nil)
		m.users.EXPECT().ResolveUser(gomock.Any(), "user3").Return(model.UserProfile{UserID: "user3", DisplayName: "Carol Mensah"}, nil)

		bids, stats, err := svc.GetBidHistory(ctx, "auction1", 0)
		require.NoError(t, err)
		require.Len(t, bids, 3)

		require.Equal(t, "Ali*********", bids[0].DisplayName)
		require.Equal(t, AnonymousAvatarRef("user1"), bids[0].AvatarRef)
		require.True(t, bids[1].IsAutoBid)
		require.False(t, bids[0].IsAutoBid)

		require.Equal(t, 3, stats.TotalBids)
		require.Equal(t, 3, stats.TotalBidders)
		require.True(t, stats.HighestBid.Equal(decimal.NewFromInt(155)))
	})

	t.Run("empty_auction_id", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t)

		_, _, err := svc.GetBidHistory(ctx, "", 10)
		require.ErrorIs(t, err, historyerrors.ErrInvalidQuery)
	})

	t.Run("bid_fetch_failure_propagates", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.bids.EXPECT().FetchBids(gomock.Any(), "auction1", 10).Return(nil, fmt.Errorf("fetch: %w", historyerrors.ErrAuctionNotFound))

		_, _, err := svc.GetBidHistory(ctx, "auction1", 10)
		require.ErrorIs(t, err, historyerrors.ErrAuctionNotFound)
	})

	t.Run("auto_bid_failure_degrades", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.bids.EXPECT().FetchBids(gomock.Any(), "auction1", 10).Return(exampleBids(base), nil)
		m.autoBids.EXPECT().FetchAutoBids(gomock.Any(), "auction1").Return(nil, errors.New("store down"))
		m.users.EXPECT().ResolveUser(gomock.Any(), gomock.Any()).Return(model.UserProfile{}, historyerrors.ErrUserNotFound).Times(3)

		bids, _, err := svc.GetBidHistory(ctx, "auction1", 10)
		require.NoError(t, err)
		for _, b := range bids {
			require.False(t, b.IsAutoBid)
		}
	})

	t.Run("unresolved_profile_gets_masked_fallback", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.bids.EXPECT().FetchBids(gomock.Any(), "auction1", 10).Return(exampleBids(base)[:1], nil)
		m.autoBids.EXPECT().FetchAutoBids(gomock.Any(), "auction1").Return(nil, nil)
		m.users.EXPECT().ResolveUser(gomock.Any(), "user1").Return(model.UserProfile{}, historyerrors.ErrUserNotFound)

		bids, _, err := svc.GetBidHistory(ctx, "auction1", 10)
		require.NoError(t, err)
		// fallback "User user1" masked to 3 visible characters
		require.Equal(t, MaskDisplayName(FallbackDisplayName("user1")), bids[0].DisplayName)
	})

	t.Run("zero_bids_is_empty_state", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.bids.EXPECT().FetchBids(gomock.Any(), "auction1", 10).Return(nil, nil)

		bids, stats, err := svc.GetBidHistory(ctx, "auction1", 10)
		require.NoError(t, err)
		require.Empty(t, bids)
		require.Zero(t, stats.TotalBids)
		require.Equal(t, model.TrendStable, stats.PriceTrend)
	})
}

// Tests GetPaginatedBidHistory
func TestHistoryService_GetPaginatedBidHistory(t *testing.T) {
	base := time.Now().UTC()
	ctx := context.Background()

	t.Run("full_page_sets_cursor", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.bids.EXPECT().FetchBidsPage(gomock.Any(), "auction1", 3, "").Return(exampleBids(base), nil)
		m.autoBids.EXPECT().FetchAutoBids(gomock.Any(), "auction1").Return(nil, nil)
		m.users.EXPECT().ResolveUser(gomock.Any(), gomock.Any()).Return(model.UserProfile{}, historyerrors.ErrUserNotFound).Times(3)

		page, stats, err := svc.GetPaginatedBidHistory(ctx, "auction1", 3, "")
		require.NoError(t, err)
		require.True(t, page.HasMore)
		require.Equal(t, "bid3", page.Cursor)
		// stats cover the returned page only
		require.Equal(t, 3, stats.TotalBids)
	})

	t.Run("invalid_cursor_propagates", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.bids.EXPECT().FetchBidsPage(gomock.Any(), "auction1", 3, "stale").Return(nil, fmt.Errorf("page: %w", historyerrors.ErrInvalidCursor))

		_, _, err := svc.GetPaginatedBidHistory(ctx, "auction1", 3, "stale")
		require.ErrorIs(t, err, historyerrors.ErrInvalidCursor)
	})

	t.Run("page_size_clamped_to_max", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.bids.EXPECT().FetchBidsPage(gomock.Any(), "auction1", 100, "").Return(nil, nil)

		_, _, err := svc.GetPaginatedBidHistory(ctx, "auction1", 5000, "")
		require.NoError(t, err)
	})
}

// Tests GetBidTrends
func TestHistoryService_GetBidTrends(t *testing.T) {
	base := time.Now().UTC()
	ctx := context.Background()

	t.Run("report_without_directory_lookups", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.bids.EXPECT().FetchBids(gomock.Any(), "auction1", 0).Return(exampleBids(base), nil)

		report, err := svc.GetBidTrends(ctx, "auction1")
		require.NoError(t, err)
		require.Equal(t, model.TrendUp, report.OverallTrend)
		require.True(t, report.HasBidWars)
	})

	t.Run("closing_patterns_survive_sample_truncation", func(t *testing.T) {
		cfg := config.Default()
		cfg.Analytics.TrendSampleSize = 10
		svc, m := newServiceWithMocksConfig(t, cfg)

		// 15 calm hourly bids, then 5 bids packed into the final
		// minute. The sample must keep the most recent bids, or the
		// closing-span patterns can never be seen on long auctions.
		var bids []model.Bid
		for i := 0; i < 15; i++ {
			bids = append(bids, newBid(fmt.Sprintf("calm%d", i), "user1", int64(100+i*10), base.Add(time.Duration(i)*time.Hour)))
		}
		closing := base.Add(14*time.Hour + time.Minute)
		for i := 0; i < 5; i++ {
			bids = append(bids, newBid(fmt.Sprintf("snipe%d", i), "user2", int64(300+i*10), closing.Add(time.Duration(i*10)*time.Second)))
		}
		m.bids.EXPECT().FetchBids(gomock.Any(), "auction1", 0).Return(bids, nil)

		report, err := svc.GetBidTrends(ctx, "auction1")
		require.NoError(t, err)
		require.True(t, report.HasSniping)
		require.True(t, report.HasBidWars)
		require.True(t, report.HasLateBidding)
	})

	t.Run("fetch_failure_propagates", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.bids.EXPECT().FetchBids(gomock.Any(), "auction1", 0).Return(nil, errors.New("store down"))

		_, err := svc.GetBidTrends(ctx, "auction1")
		require.Error(t, err)
	})
}

// Tests GetUserBidHistory
func TestHistoryService_GetUserBidHistory(t *testing.T) {
	base := time.Now().UTC()
	ctx := context.Background()

	t.Run("cross_auction_scan_most_recent_first", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.bids.EXPECT().ListAuctionIDs(gomock.Any(), 50).Return([]string{"auction1", "auction2", "auction3"}, nil)
		m.bids.EXPECT().FetchUserBids(gomock.Any(), "auction1", "user1", 10).Return([]model.Bid{
			newBid("bid1", "user1", 100, base),
			newBid("bid3", "user1", 150, base.Add(2*time.Hour)),
		}, nil)
		m.bids.EXPECT().FetchUserBids(gomock.Any(), "auction2", "user1", 10).Return([]model.Bid{
			newBid("bid2", "user1", 120, base.Add(time.Hour)),
		}, nil)
		m.bids.EXPECT().FetchUserBids(gomock.Any(), "auction3", "user1", 10).Return(nil, nil)
		m.autoBids.EXPECT().FetchAutoBids(gomock.Any(), "auction1").Return(nil, nil)
		m.autoBids.EXPECT().FetchAutoBids(gomock.Any(), "auction2").Return(nil, nil)
		m.users.EXPECT().ResolveUser(gomock.Any(), "user1").Return(model.UserProfile{UserID: "user1", DisplayName: "Alice Carter"}, nil)

		bids, err := svc.GetUserBidHistory(ctx, "user1", 10)
		require.NoError(t, err)
		require.Len(t, bids, 3)

		// newest first, own identity shown unmasked
		require.Equal(t, []string{"bid3", "bid2", "bid1"}, []string{bids[0].BidID, bids[1].BidID, bids[2].BidID})
		for _, b := range bids {
			require.Equal(t, OwnDisplayName, b.DisplayName)
		}
	})

	t.Run("overshot_scan_keeps_positions_contiguous", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		// 4 bids in auction1 plus 5 in auction2 against a limit of 5:
		// the response must cover the 5 most recent bids with positions
		// running 1..5, and the oldest kept bid must carry no deltas
		// into the dropped remainder.
		var older, newer []model.Bid
		for i := 0; i < 4; i++ {
			older = append(older, newBid(fmt.Sprintf("old%d", i), "user1", int64(100+i*10), base.Add(time.Duration(i)*time.Hour)))
		}
		for i := 0; i < 5; i++ {
			newer = append(newer, newBid(fmt.Sprintf("new%d", i), "user1", int64(200+i*10), base.Add(time.Duration(4+i)*time.Hour)))
		}

		m.bids.EXPECT().ListAuctionIDs(gomock.Any(), 50).Return([]string{"auction1", "auction2"}, nil)
		m.bids.EXPECT().FetchUserBids(gomock.Any(), "auction1", "user1", 5).Return(older, nil)
		m.bids.EXPECT().FetchUserBids(gomock.Any(), "auction2", "user1", 5).Return(newer, nil)
		m.autoBids.EXPECT().FetchAutoBids(gomock.Any(), "auction1").Return(nil, nil)
		m.autoBids.EXPECT().FetchAutoBids(gomock.Any(), "auction2").Return(nil, nil)
		m.users.EXPECT().ResolveUser(gomock.Any(), "user1").Return(model.UserProfile{}, historyerrors.ErrUserNotFound)

		bids, err := svc.GetUserBidHistory(ctx, "user1", 5)
		require.NoError(t, err)
		require.Len(t, bids, 5)

		// newest first: new4..new0, positions 5..1
		for i, b := range bids {
			require.Equal(t, fmt.Sprintf("new%d", 4-i), b.BidID)
			require.Equal(t, 5-i, b.Position)
		}
		// the oldest kept bid starts the enriched sequence
		oldest := bids[len(bids)-1]
		require.Equal(t, 1, oldest.Position)
		require.Zero(t, oldest.TimeSincePrevious)
		require.True(t, oldest.PriceChange.IsZero())
		require.Zero(t, oldest.PriceChangePercent)
	})

	t.Run("scan_stops_once_limit_satisfied", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.bids.EXPECT().ListAuctionIDs(gomock.Any(), 50).Return([]string{"auction1", "auction2"}, nil)
		m.bids.EXPECT().FetchUserBids(gomock.Any(), "auction1", "user1", 2).Return([]model.Bid{
			newBid("bid1", "user1", 100, base),
			newBid("bid2", "user1", 120, base.Add(time.Minute)),
		}, nil)
		// auction2 must not be queried
		m.autoBids.EXPECT().FetchAutoBids(gomock.Any(), "auction1").Return(nil, nil)
		m.users.EXPECT().ResolveUser(gomock.Any(), "user1").Return(model.UserProfile{}, historyerrors.ErrUserNotFound)

		bids, err := svc.GetUserBidHistory(ctx, "user1", 2)
		require.NoError(t, err)
		require.Len(t, bids, 2)
	})

	t.Run("empty_user_id", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t)

		_, err := svc.GetUserBidHistory(ctx, "", 10)
		require.ErrorIs(t, err, historyerrors.ErrInvalidQuery)
	})

	t.Run("listing_failure_propagates", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.bids.EXPECT().ListAuctionIDs(gomock.Any(), 50).Return(nil, errors.New("store down"))

		_, err := svc.GetUserBidHistory(ctx, "user1", 10)
		require.Error(t, err)
	})
}

// Pagination round-trip over randomly generated append-only streams:
// walking pages from an empty cursor reproduces the full history
// exactly once, in order.
func TestPagination_RoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 20; trial++ {
		store := repository.NewMemoryStore()
		store.AddAuction("auction1")

		n := 1 + rng.Intn(120)
		base := time.Now().UTC()
		ts := base
		var want []string
		for i := 0; i < n; i++ {
			ts = ts.Add(time.Duration(rng.Intn(300)) * time.Second)
			bid := newBid(fmt.Sprintf("bid%d", i), fmt.Sprintf("user%d", rng.Intn(8)), int64(100+rng.Intn(900)), ts)
			require.NoError(t, store.AddBid(bid))
			want = append(want, bid.BidID)
		}

		svc := NewHistoryService(store, store, store, config.Default())
		pageSize := 1 + rng.Intn(16)

		var got []string
		cursor := ""
		for {
			page, _, err := svc.GetPaginatedBidHistory(context.Background(), "auction1", pageSize, cursor)
			require.NoError(t, err)
			for _, item := range page.Items {
				got = append(got, item.BidID)
			}
			if !page.HasMore {
				break
			}
			cursor = page.Cursor
		}

		require.Equal(t, want, got, "trial %d pageSize %d", trial, pageSize)
	}
}
