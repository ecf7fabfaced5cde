package handler

import (
	"context"
	"fmt"
	"net/http"

	model "auction-insights/internal/models"
	"auction-insights/services/history/helpers"
	"auction-insights/utils"

	"github.com/gin-gonic/gin"
)

type HistoryServiceInterface interface {
	GetBidHistory(ctx context.Context, auctionID string, limit int) ([]model.EnrichedBid, model.BidHistoryStats, error)
	GetPaginatedBidHistory(ctx context.Context, auctionID string, pageSize int, cursor string) (model.BidPage, model.BidHistoryStats, error)
	GetUserBidHistory(ctx context.Context, userID string, limit int) ([]model.EnrichedBid, error)
	GetBidTrends(ctx context.Context, auctionID string) (model.TrendReport, error)
}

type HistoryHandler struct {
	service HistoryServiceInterface
}

func NewHistoryHandler(service HistoryServiceInterface) *HistoryHandler {
	return &HistoryHandler{service: service}
}

// GetBidHistoryHandler handles GET /auctions/:auction_id/bids
func (h *HistoryHandler) GetBidHistoryHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	limit := helpers.QueryInt(c, "limit", 0)

	bids, stats, err := h.service.GetBidHistory(c.Request.Context(), auctionID, limit)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidHistoryHandler: error retrieving bid history", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.BidHistoryResponse{
		Bids:  helpers.ToBidResponses(bids),
		Stats: helpers.ToStatsResponse(stats),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bid history retrieved successfully")
	helpers.LogSuccess("GetBidHistoryHandler", "bid history retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(bids),
	})
}

// GetPaginatedBidHistoryHandler handles GET /auctions/:auction_id/bids/page
func (h *HistoryHandler) GetPaginatedBidHistoryHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	pageSize := helpers.QueryInt(c, "page_size", 0)
	cursor := c.Query("cursor")

	page, stats, err := h.service.GetPaginatedBidHistory(c.Request.Context(), auctionID, pageSize, cursor)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetPaginatedBidHistoryHandler: error retrieving bid page", map[string]any{
			"auction_id": auctionID,
			"cursor":     cursor,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.PagedBidHistoryResponse{
		Items:   helpers.ToBidResponses(page.Items),
		Cursor:  page.Cursor,
		HasMore: page.HasMore,
		Stats:   helpers.ToStatsResponse(stats),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bid page retrieved successfully (stats cover this page only)")
	helpers.LogSuccess("GetPaginatedBidHistoryHandler", "bid page retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(page.Items),
		"has_more":   page.HasMore,
	})
}

// GetUserBidHistoryHandler handles GET /users/:user_id/bids
func (h *HistoryHandler) GetUserBidHistoryHandler(c *gin.Context) {
	userID := c.Param("user_id")
	limit := helpers.QueryInt(c, "limit", 0)

	bids, err := h.service.GetUserBidHistory(c.Request.Context(), userID, limit)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetUserBidHistoryHandler: error retrieving user bids", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponses(bids), "user bid history retrieved successfully")
	helpers.LogSuccess("GetUserBidHistoryHandler", "user bid history retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(bids),
	})
}

// GetBidTrendsHandler handles GET /auctions/:auction_id/trends
func (h *HistoryHandler) GetBidTrendsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	report, err := h.service.GetBidTrends(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidTrendsHandler: error computing trends", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToTrendResponse(report), "bid trends computed successfully")
	helpers.LogSuccess("GetBidTrendsHandler", "bid trends computed successfully", map[string]any{
		"auction_id": auctionID,
	})
}
