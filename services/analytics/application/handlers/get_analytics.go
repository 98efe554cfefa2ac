package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ghuser/stockledger/pkg/auth"
	"github.com/ghuser/stockledger/pkg/errhttp"
	"github.com/ghuser/stockledger/pkg/httpx"
	appsvcs "github.com/ghuser/stockledger/services/analytics/application/services"
	"github.com/ghuser/stockledger/services/analytics/domain/metrics"
)

const (
	defaultWindowDays = 7
	maxWindowDays     = 365
	defaultTopLimit   = 5
	maxTopLimit       = 50
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"authentication required"`
} // @name AnalyticsErrorResponse

// SummaryResponse carries the dashboard headline figures.
type SummaryResponse struct {
	TotalRevenue       float64 `json:"total_revenue"       example:"12500.50"`
	TotalItemsSold     int     `json:"total_items_sold"    example:"42"`
	InventoryValuation float64 `json:"inventory_valuation" example:"80300"`
	LowStockCount      int     `json:"low_stock_count"     example:"3"`
} // @name SummaryResponse

// DayRevenueResponse is one bucket of the revenue series.
type DayRevenueResponse struct {
	Day     string  `json:"day"     example:"2024-01-15"`
	Revenue float64 `json:"revenue" example:"1500"`
} // @name DayRevenueResponse

// RevenueSeriesResponse is the zero-filled daily revenue series.
type RevenueSeriesResponse struct {
	Days []DayRevenueResponse `json:"days"`
} // @name RevenueSeriesResponse

// TopItemResponse is one row of the best-sellers ranking.
type TopItemResponse struct {
	Name     string `json:"name"     example:"Rice 5kg"`
	Quantity int    `json:"quantity" example:"27"`
} // @name TopItemResponse

// TopItemsResponse is the best-sellers ranking.
type TopItemsResponse struct {
	Items []TopItemResponse `json:"items"`
} // @name TopItemsResponse

// GetSummaryHandler handles GET /analytics/summary requests.
type GetSummaryHandler struct {
	svc *appsvcs.Services
}

// NewGetSummaryHandler returns a GetSummaryHandler backed by the given services.
func NewGetSummaryHandler(svc *appsvcs.Services) *GetSummaryHandler {
	return &GetSummaryHandler{svc: svc}
}

// Execute computes the dashboard summary.
//
//	@Summary		Analytics summary
//	@Description	Total revenue, units sold, inventory valuation and low-stock count for the authenticated user
//	@Tags			analytics
//	@Produce		json
//	@Success		200	{object}	SummaryResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/analytics/summary [get]
func (h *GetSummaryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	summary, err := h.svc.Analytics.Summary(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, SummaryResponse{
		TotalRevenue:       summary.TotalRevenue.InexactFloat64(),
		TotalItemsSold:     summary.TotalItemsSold,
		InventoryValuation: summary.InventoryValuation.InexactFloat64(),
		LowStockCount:      summary.LowStockCount,
	})
}

// GetRevenueHandler handles GET /analytics/revenue requests.
type GetRevenueHandler struct {
	svc *appsvcs.Services
}

// NewGetRevenueHandler returns a GetRevenueHandler backed by the given services.
func NewGetRevenueHandler(svc *appsvcs.Services) *GetRevenueHandler {
	return &GetRevenueHandler{svc: svc}
}

// Execute returns the daily revenue series for the trailing ?days window.
//
//	@Summary		Revenue series
//	@Description	Daily revenue over the trailing window, one zero-filled bucket per calendar day
//	@Tags			analytics
//	@Produce		json
//	@Param			days	query		int	false	"Window in days (default 7, max 365)"
//	@Success		200		{object}	RevenueSeriesResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/analytics/revenue [get]
func (h *GetRevenueHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	if days <= 0 {
		days = defaultWindowDays
	}
	if days > maxWindowDays {
		days = maxWindowDays
	}

	series, err := h.svc.Analytics.RevenueSeries(r.Context(), userID, days)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := RevenueSeriesResponse{Days: make([]DayRevenueResponse, len(series))}
	for i, bucket := range series {
		out.Days[i] = DayRevenueResponse{
			Day:     bucket.Day.Format(time.DateOnly),
			Revenue: bucket.Revenue.InexactFloat64(),
		}
	}
	httpx.JSON(w, http.StatusOK, out)
}

// GetTopItemsHandler handles GET /analytics/top-items requests.
type GetTopItemsHandler struct {
	svc *appsvcs.Services
}

// NewGetTopItemsHandler returns a GetTopItemsHandler backed by the given services.
func NewGetTopItemsHandler(svc *appsvcs.Services) *GetTopItemsHandler {
	return &GetTopItemsHandler{svc: svc}
}

// Execute ranks the user's best-selling items by units sold.
//
//	@Summary		Top selling items
//	@Description	Best sellers by units sold, descending; ties keep first-sale order
//	@Tags			analytics
//	@Produce		json
//	@Param			limit	query		int	false	"Ranking size (default 5, max 50)"
//	@Success		200		{object}	TopItemsResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/analytics/top-items [get]
func (h *GetTopItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = defaultTopLimit
	}
	if limit > maxTopLimit {
		limit = maxTopLimit
	}

	top, err := h.svc.Analytics.TopItems(r.Context(), userID, limit)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toTopItemsResponse(top))
}

func toTopItemsResponse(top []metrics.ItemSales) TopItemsResponse {
	out := TopItemsResponse{Items: make([]TopItemResponse, len(top))}
	for i, row := range top {
		out.Items[i] = TopItemResponse{Name: row.Name, Quantity: row.Quantity}
	}
	return out
}
