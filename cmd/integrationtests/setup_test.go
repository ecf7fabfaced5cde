package integrationtests

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"auction-insights/internal/config"
	history "auction-insights/internal/historyService"
	model "auction-insights/internal/models"
	"auction-insights/internal/repository"
	"auction-insights/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SetupTestRouter initializes the router over a seeded in-memory store
// for integration testing.
func SetupTestRouter(seed func(*repository.MemoryStore)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := repository.NewMemoryStore()
	if seed != nil {
		seed(store)
	}
	service := history.NewHistoryService(store, store, store, config.Default())
	return server.SetupRouter(service)
}

// ExecuteRequestAndParse executes a GET against the router and parses
// the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, url string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest("GET", url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// seedBid is a compact bid spec for seeding test auctions
type seedBid struct {
	bidID     string
	auctionID string
	userID    string
	amount    int64
	offset    time.Duration
}

// seedAuction registers an auction and its bids relative to base
func seedAuction(store *repository.MemoryStore, base time.Time, auctionID string, bids ...seedBid) {
	store.AddAuction(auctionID)
	for _, b := range bids {
		_ = store.AddBid(model.Bid{
			BidID:     b.bidID,
			AuctionID: auctionID,
			UserID:    b.userID,
			Amount:    decimal.NewFromInt(b.amount),
			CreatedAt: base.Add(b.offset),
		})
	}
}
