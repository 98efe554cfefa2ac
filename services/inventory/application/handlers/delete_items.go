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

// DeleteItemsRequest is the request body for POST /items/delete.
type DeleteItemsRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1,max=100"`
} // @name DeleteItemsRequest

// DeleteItemsResponse reports how many items a bulk delete removed.
type DeleteItemsResponse struct {
	Deleted int64 `json:"deleted" example:"3"`
} // @name DeleteItemsResponse

// DeleteItemHandler handles DELETE /items/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute deletes a single item.
//
//	@Summary		Delete item
//	@Description	Deletes an item owned by the authenticated user
//	@Tags			items
//	@Produce		json
//	@Param			id	path	string	true	"Item ID"
//	@Success		204	"item deleted"
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Inventory.Delete(r.Context(), userID, id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BulkDeleteItemsHandler handles POST /items/delete requests.
type BulkDeleteItemsHandler struct {
	svc *appsvcs.Services
}

// NewBulkDeleteItemsHandler returns a BulkDeleteItemsHandler backed by the given services.
func NewBulkDeleteItemsHandler(svc *appsvcs.Services) *BulkDeleteItemsHandler {
	return &BulkDeleteItemsHandler{svc: svc}
}

// Execute deletes a batch of items. IDs that do not exist or belong to
// another user are skipped; the response carries the count actually removed.
//
//	@Summary		Bulk delete items
//	@Description	Deletes up to 100 items in one call, skipping ids not owned by the caller
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		DeleteItemsRequest	true	"Item ids to delete"
//	@Success		200		{object}	DeleteItemsResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items/delete [post]
func (h *BulkDeleteItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[DeleteItemsRequest](w, r)
	if !ok {
		return
	}

	deleted, err := h.svc.Inventory.DeleteMany(r.Context(), userID, req.IDs)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, DeleteItemsResponse{Deleted: deleted})
}
