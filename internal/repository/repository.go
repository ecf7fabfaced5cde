package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"auction-insights/internal/historyerrors"
	model "auction-insights/internal/models"
)

// BidStore defines read-only, time-ordered access to recorded bids.
// All methods return bids in ascending CreatedAt order; the store is
// assumed append-only, which this package does not enforce.
type BidStore interface {
	FetchBids(ctx context.Context, auctionID string, limit int) ([]model.Bid, error)
	FetchBidsPage(ctx context.Context, auctionID string, pageSize int, cursor string) ([]model.Bid, error)
	FetchUserBids(ctx context.Context, auctionID, userID string, limit int) ([]model.Bid, error)
	ListAuctionIDs(ctx context.Context, limit int) ([]string, error)
}

// AutoBidStore returns the standing maximum-bid orders for an auction
type AutoBidStore interface {
	FetchAutoBids(ctx context.Context, auctionID string) ([]model.AutoBid, error)
}

// UserDirectory resolves a user id to a display profile
type UserDirectory interface {
	ResolveUser(ctx context.Context, userID string) (model.UserProfile, error)
}

// MemoryStore is a concurrency-safe in-memory implementation of
// BidStore, AutoBidStore and UserDirectory, used for local runs and
// hermetic tests.
type MemoryStore struct {
	mu         sync.RWMutex
	bids       map[string][]model.Bid     // key: auctionID -> bids sorted by CreatedAt asc
	autoBids   map[string][]model.AutoBid // key: auctionID -> standing orders
	users      map[string]model.UserProfile
	auctionIDs []string // insertion order, drives cross-auction scans
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bids:     make(map[string][]model.Bid),
		autoBids: make(map[string][]model.AutoBid),
		users:    make(map[string]model.UserProfile),
	}
}

// AddAuction registers an auction so bids can be recorded against it
func (s *MemoryStore) AddAuction(auctionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bids[auctionID]; ok {
		return
	}
	s.bids[auctionID] = nil
	s.auctionIDs = append(s.auctionIDs, auctionID)
}

// AddBid records a bid, keeping the auction's history sorted by time
func (s *MemoryStore) AddBid(bid model.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bids[bid.AuctionID]; !ok {
		return fmt.Errorf("add bid for auction %s: %w", bid.AuctionID, historyerrors.ErrAuctionNotFound)
	}

	bids := s.bids[bid.AuctionID]
	i := sort.Search(len(bids), func(i int) bool {
		return bids[i].CreatedAt.After(bid.CreatedAt)
	})
	bids = append(bids, model.Bid{})
	copy(bids[i+1:], bids[i:])
	bids[i] = bid
	s.bids[bid.AuctionID] = bids
	return nil
}

// AddAutoBid records a standing maximum-bid order
func (s *MemoryStore) AddAutoBid(ab model.AutoBid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bids[ab.AuctionID]; !ok {
		return fmt.Errorf("add auto-bid for auction %s: %w", ab.AuctionID, historyerrors.ErrAuctionNotFound)
	}
	s.autoBids[ab.AuctionID] = append(s.autoBids[ab.AuctionID], ab)
	return nil
}

// AddUser registers a directory profile
func (s *MemoryStore) AddUser(profile model.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[profile.UserID] = profile
}

// FetchBids returns up to limit bids for an auction in ascending
// timestamp order. limit <= 0 means no cap.
func (s *MemoryStore) FetchBids(_ context.Context, auctionID string, limit int) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bids, ok := s.bids[auctionID]
	if !ok {
		return nil, fmt.Errorf("fetch bids for auction %s: %w", auctionID, historyerrors.ErrAuctionNotFound)
	}
	if limit > 0 && limit < len(bids) {
		bids = bids[:limit]
	}
	return append([]model.Bid(nil), bids...), nil
}

// FetchBidsPage returns the pageSize bids following the cursor, which
// is the BidID of the last item of the previous page. An empty cursor
// starts from the beginning; an unknown cursor is an error.
func (s *MemoryStore) FetchBidsPage(_ context.Context, auctionID string, pageSize int, cursor string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bids, ok := s.bids[auctionID]
	if !ok {
		return nil, fmt.Errorf("fetch bid page for auction %s: %w", auctionID, historyerrors.ErrAuctionNotFound)
	}

	start := 0
	if cursor != "" {
		start = -1
		for i, b := range bids {
			if b.BidID == cursor {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return nil, fmt.Errorf("fetch bid page for auction %s: cursor %q: %w", auctionID, cursor, historyerrors.ErrInvalidCursor)
		}
	}

	end := start + pageSize
	if end > len(bids) {
		end = len(bids)
	}
	return append([]model.Bid(nil), bids[start:end]...), nil
}

// FetchUserBids returns up to limit of one user's bids on an auction,
// ascending by timestamp
func (s *MemoryStore) FetchUserBids(_ context.Context, auctionID, userID string, limit int) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bids, ok := s.bids[auctionID]
	if !ok {
		return nil, fmt.Errorf("fetch user bids for auction %s: %w", auctionID, historyerrors.ErrAuctionNotFound)
	}

	var out []model.Bid
	for _, b := range bids {
		if b.UserID == userID {
			out = append(out, b)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

// ListAuctionIDs returns up to limit known auction ids in insertion order
func (s *MemoryStore) ListAuctionIDs(_ context.Context, limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.auctionIDs
	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}
	return append([]string(nil), ids...), nil
}

// FetchAutoBids returns the standing orders for an auction
func (s *MemoryStore) FetchAutoBids(_ context.Context, auctionID string) ([]model.AutoBid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.bids[auctionID]; !ok {
		return nil, fmt.Errorf("fetch auto-bids for auction %s: %w", auctionID, historyerrors.ErrAuctionNotFound)
	}
	return append([]model.AutoBid(nil), s.autoBids[auctionID]...), nil
}

// ResolveUser returns the directory profile for a user id
func (s *MemoryStore) ResolveUser(_ context.Context, userID string) (model.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.users[userID]
	if !ok {
		return model.UserProfile{}, fmt.Errorf("resolve user %s: %w", userID, historyerrors.ErrUserNotFound)
	}
	return profile, nil
}
