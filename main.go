package main

import (
	"fmt"
	"os"
	"time"

	"auction-insights/internal/config"
	history "auction-insights/internal/historyService"
	model "auction-insights/internal/models"
	"auction-insights/internal/repository"
	"auction-insights/internal/server"
	"auction-insights/utils"

	"github.com/shopspring/decimal"
)

func main() {

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	store := repository.NewMemoryStore()

	seedDemoData(store)

	historySvc := history.NewHistoryService(store, store, store, cfg)

	router := server.SetupRouter(historySvc)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("Starting bid history server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// seedDemoData populates the in-memory store with a small scripted
// auction so the service answers queries out of the box
func seedDemoData(store *repository.MemoryStore) {
	users := []model.UserProfile{
		{UserID: "user1", DisplayName: "Alice Carter", AvatarRef: "avatar_03"},
		{UserID: "user2", DisplayName: "Bob Nguyen", AvatarRef: "avatar_11"},
		{UserID: "user3", DisplayName: "Carol Mensah", AvatarRef: "avatar_27"},
	}
	for _, u := range users {
		store.AddUser(u)
	}

	store.AddAuction("auction1")
	store.AddAuction("auction2")

	start := time.Now().Add(-2 * time.Hour)
	bids := []struct {
		auctionID string
		userID    string
		amount    int64
		offset    time.Duration
	}{
		{"auction1", "user1", 100, 0},
		{"auction1", "user2", 120, 12 * time.Minute},
		{"auction1", "user1", 135, 25 * time.Minute},
		{"auction1", "user3", 160, 70 * time.Minute},
		{"auction1", "user2", 180, 110 * time.Minute},
		{"auction2", "user3", 50, 30 * time.Minute},
		{"auction2", "user1", 65, 90 * time.Minute},
	}
	for _, b := range bids {
		bid := model.Bid{
			BidID:     utils.GenerateID(),
			AuctionID: b.auctionID,
			UserID:    b.userID,
			Amount:    decimal.NewFromInt(b.amount),
			CreatedAt: start.Add(b.offset),
		}
		if err := store.AddBid(bid); err != nil {
			utils.Warn("failed to seed bid", map[string]any{"auction_id": b.auctionID, "error": err.Error()})
		}
	}

	if err := store.AddAutoBid(model.AutoBid{
		AutoBidID: utils.GenerateID(),
		AuctionID: "auction1",
		UserID:    "user2",
		MaxAmount: decimal.NewFromInt(250),
		CreatedAt: start,
		UpdatedAt: start,
	}); err != nil {
		utils.Warn("failed to seed auto-bid", map[string]any{"error": err.Error()})
	}
}
