package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stockledger/pkg/auth"
	"github.com/ghuser/stockledger/pkg/errhttp"
	"github.com/ghuser/stockledger/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockledger/pkg/validator"
	appsvcs "github.com/ghuser/stockledger/services/sales/application/services"
)

// RecordSaleRequest is the request body for POST /sales.
type RecordSaleRequest struct {
	ItemID    uuid.UUID `json:"item_id" validate:"required" example:"123e4567-e89b-12d3-a456-426614174001"`
	Quantity  int       `json:"quantity" validate:"required,gt=0" example:"3"`
	UnitPrice float64   `json:"unit_price" validate:"gte=0" example:"500"`
} // @name RecordSaleRequest

// PostSaleHandler handles POST /sales requests.
type PostSaleHandler struct {
	svc *appsvcs.Services
}

// NewPostSaleHandler returns a PostSaleHandler backed by the given services.
func NewPostSaleHandler(svc *appsvcs.Services) *PostSaleHandler {
	return &PostSaleHandler{svc: svc}
}

// Execute records a sale, decrementing the item's stock atomically.
//
//	@Summary		Record sale
//	@Description	Records a sale and deducts the quantity from the item's stock in one transaction; overselling is rejected with 409
//	@Tags			sales
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RecordSaleRequest	true	"Sale to record"
//	@Success		201		{object}	SaleResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/sales [post]
func (h *PostSaleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[RecordSaleRequest](w, r)
	if !ok {
		return
	}

	sale, err := h.svc.Sales.RecordSale(r.Context(), userID, req.ItemID, req.Quantity, decimal.NewFromFloat(req.UnitPrice))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toSaleResponse(sale))
}
