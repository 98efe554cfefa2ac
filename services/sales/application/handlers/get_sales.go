package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/stockledger/pkg/auth"
	"github.com/ghuser/stockledger/pkg/errhttp"
	"github.com/ghuser/stockledger/pkg/httpx"
	appsvcs "github.com/ghuser/stockledger/services/sales/application/services"
	"github.com/ghuser/stockledger/services/sales/domain/repositories"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
	maxWindowDays   = 365
)

// ListSalesResponse is the paginated sale list.
type ListSalesResponse struct {
	Sales []SaleResponse `json:"sales"`
	Total int            `json:"total" example:"17"`
} // @name ListSalesResponse

// GetSalesHandler handles GET /sales requests.
type GetSalesHandler struct {
	svc *appsvcs.Services
}

// NewGetSalesHandler returns a GetSalesHandler backed by the given services.
func NewGetSalesHandler(svc *appsvcs.Services) *GetSalesHandler {
	return &GetSalesHandler{svc: svc}
}

// Execute lists the user's sales, newest first. An optional ?days=N bounds
// the window to the last N days.
//
//	@Summary		List sales
//	@Description	Lists the authenticated user's sales, optionally limited to a trailing day window
//	@Tags			sales
//	@Produce		json
//	@Param			days	query		int	false	"Trailing window in days (max 365)"
//	@Param			limit	query		int	false	"Page size (max 200)"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{object}	ListSalesResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/sales [get]
func (h *GetSalesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	sales, total, err := h.svc.Sales.List(r.Context(), userID, queryOpts(r))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ListSalesResponse{Sales: toSaleResponses(sales), Total: total})
}

// GetSaleHandler handles GET /sales/{id} requests.
type GetSaleHandler struct {
	svc *appsvcs.Services
}

// NewGetSaleHandler returns a GetSaleHandler backed by the given services.
func NewGetSaleHandler(svc *appsvcs.Services) *GetSaleHandler {
	return &GetSaleHandler{svc: svc}
}

// Execute fetches one sale by id.
//
//	@Summary		Get sale
//	@Description	Fetches a single sale owned by the authenticated user
//	@Tags			sales
//	@Produce		json
//	@Param			id	path		string	true	"Sale ID"
//	@Success		200	{object}	SaleResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/sales/{id} [get]
func (h *GetSaleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid sale id")
		return
	}

	sale, err := h.svc.Sales.GetByID(r.Context(), userID, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toSaleResponse(sale))
}

func queryOpts(r *http.Request) repositories.QueryOpts {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	opts := repositories.QueryOpts{Limit: limit, Offset: offset}
	if days > 0 {
		if days > maxWindowDays {
			days = maxWindowDays
		}
		opts.Since = time.Now().UTC().AddDate(0, 0, -days)
	}
	return opts
}
