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

// AdjustQuantityRequest is the request body for PATCH /items/{id}/quantity.
// The quantity is an absolute value, not a delta. Negative values are
// accepted and ignored; the stored quantity is left unchanged.
type AdjustQuantityRequest struct {
	Quantity int `json:"quantity" example:"7"`
} // @name AdjustQuantityRequest

// PatchQuantityHandler handles PATCH /items/{id}/quantity requests.
type PatchQuantityHandler struct {
	svc *appsvcs.Services
}

// NewPatchQuantityHandler returns a PatchQuantityHandler backed by the given services.
func NewPatchQuantityHandler(svc *appsvcs.Services) *PatchQuantityHandler {
	return &PatchQuantityHandler{svc: svc}
}

// Execute sets an item's quantity.
//
//	@Summary		Adjust quantity
//	@Description	Sets the item's stock quantity to an absolute value; negative requests are ignored
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Item ID"
//	@Param			request	body		AdjustQuantityRequest	true	"New quantity"
//	@Success		204		"quantity updated"
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/items/{id}/quantity [patch]
func (h *PatchQuantityHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	req, ok := pkgvalidator.ValidateRequest[AdjustQuantityRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.Inventory.AdjustQuantity(r.Context(), userID, id, req.Quantity); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
