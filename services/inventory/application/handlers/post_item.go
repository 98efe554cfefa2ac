package handlers

import (
	"net/http"

	"github.com/ghuser/stockledger/pkg/auth"
	"github.com/ghuser/stockledger/pkg/errhttp"
	"github.com/ghuser/stockledger/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockledger/pkg/validator"
	appsvcs "github.com/ghuser/stockledger/services/inventory/application/services"
)

// CreateItemRequest is the request body for POST /items.
type CreateItemRequest struct {
	Name              string   `json:"name" validate:"required,min=1,max=255" example:"Rice 5kg"`
	Quantity          int      `json:"quantity" validate:"gte=0" example:"12"`
	CostPrice         *float64 `json:"cost_price" validate:"omitempty,gte=0" example:"350"`
	SellingPrice      *float64 `json:"selling_price" validate:"omitempty,gte=0" example:"500"`
	LowStockThreshold *int     `json:"low_stock_threshold" validate:"omitempty,gte=0" example:"5"`
} // @name CreateItemRequest

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new inventory item.
//
//	@Summary		Create item
//	@Description	Creates a new inventory item for the authenticated user, subject to the free-plan quota and duplicate-name check
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	ItemResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Inventory.AddItem(r.Context(), userID, appsvcs.UpdateFields{
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

	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}
