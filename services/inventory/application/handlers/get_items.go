package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/stockledger/pkg/auth"
	"github.com/ghuser/stockledger/pkg/errhttp"
	"github.com/ghuser/stockledger/pkg/httpx"
	appsvcs "github.com/ghuser/stockledger/services/inventory/application/services"
	"github.com/ghuser/stockledger/services/inventory/domain/repositories"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
	lowStockCap     = 10 // dashboard shows at most this many alerts
)

// ListItemsResponse is the paginated item list.
type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total" example:"42"`
} // @name ListItemsResponse

// GetItemsHandler handles GET /items requests.
type GetItemsHandler struct {
	svc *appsvcs.Services
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// Execute lists the user's items. With ?low=true only items at or below
// their restock threshold are returned, quantity ascending.
//
//	@Summary		List items
//	@Description	Lists the authenticated user's inventory, optionally filtered to low-stock items
//	@Tags			items
//	@Produce		json
//	@Param			low		query		bool	false	"Only low-stock items"
//	@Param			limit	query		int		false	"Page size (max 200)"
//	@Param			offset	query		int		false	"Page offset"
//	@Success		200		{object}	ListItemsResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/items [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	if r.URL.Query().Get("low") == "true" {
		items, err := h.svc.Inventory.ListLowStock(r.Context(), userID, lowStockCap)
		if err != nil {
			errhttp.WriteError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, ListItemsResponse{Items: toItemResponses(items), Total: len(items)})
		return
	}

	items, total, err := h.svc.Inventory.List(r.Context(), userID, queryOpts(r))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ListItemsResponse{Items: toItemResponses(items), Total: total})
}

// GetItemHandler handles GET /items/{id} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute fetches one item by id.
//
//	@Summary		Get item
//	@Description	Fetches a single inventory item owned by the authenticated user
//	@Tags			items
//	@Produce		json
//	@Param			id	path		string	true	"Item ID"
//	@Success		200	{object}	ItemResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/items/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := h.svc.Inventory.GetByID(r.Context(), userID, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}

func queryOpts(r *http.Request) repositories.QueryOpts {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return repositories.QueryOpts{Limit: limit, Offset: offset}
}
