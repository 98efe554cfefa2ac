package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/stockledger/pkg/auth"
	"github.com/ghuser/stockledger/pkg/errhttp"
	"github.com/ghuser/stockledger/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockledger/pkg/validator"
	appsvcs "github.com/ghuser/stockledger/services/inventory/application/services"
)

// UpdateItemRequest is the request body for PUT /items/{id}.
type UpdateItemRequest struct {
	Name              string   `json:"name" validate:"required,min=1,max=255" example:"Rice 5kg"`
	Quantity          int      `json:"quantity" validate:"gte=0" example:"10"`
	CostPrice         *float64 `json:"cost_price" validate:"omitempty,gte=0" example:"350"`
	SellingPrice      *float64 `json:"selling_price" validate:"omitempty,gte=0" example:"500"`
	LowStockThreshold *int     `json:"low_stock_threshold" validate:"omitempty,gte=0" example:"5"`
} // @name UpdateItemRequest

// PutItemHandler handles PUT /items/{id} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute replaces the mutable fields of an item.
//
//	@Summary		Update item
//	@Description	Updates name, quantity, prices, and restock threshold of an item owned by the authenticated user
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Item ID"
//	@Param			request	body		UpdateItemRequest	true	"Item update request"
//	@Success		200		{object}	ItemResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items/{id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Inventory.UpdateItem(r.Context(), userID, id, appsvcs.UpdateFields{
		Name:         req.Name,
		Quantity:     req.Quantity,
		CostPrice:    priceIn(req.CostPrice),
		SellingPrice: priceIn(req.SellingPrice),
		Threshold:    req.LowStockThreshold,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
