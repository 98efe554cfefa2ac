package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stockledger/pkg/auth"
	"github.com/ghuser/stockledger/pkg/errhttp"
	"github.com/ghuser/stockledger/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockledger/pkg/validator"
	appsvcs "github.com/ghuser/stockledger/services/profile/application/services"
	"github.com/ghuser/stockledger/services/profile/domain/models"
)

// ProfileResponse is the JSON representation of the user's profile.
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	Email     string    `json:"email"      example:"vendor@example.com"`
	Plan      string    `json:"plan"       example:"free"`
	Theme     string    `json:"theme"      example:"system"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
} // @name ProfileResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"profile not found"`
} // @name ProfileErrorResponse

// UpdateThemeRequest is the request body for PUT /profile/theme.
type UpdateThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=system light dark" example:"dark"`
} // @name UpdateThemeRequest

func toProfileResponse(p *models.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		Plan:      string(p.Plan),
		Theme:     p.Theme,
		CreatedAt: p.CreatedAt,
	}
}

// GetProfileHandler handles GET /profile requests.
type GetProfileHandler struct {
	svc *appsvcs.Services
}

// NewGetProfileHandler returns a GetProfileHandler backed by the given services.
func NewGetProfileHandler(svc *appsvcs.Services) *GetProfileHandler {
	return &GetProfileHandler{svc: svc}
}

// Execute fetches the authenticated user's profile.
//
//	@Summary		Get profile
//	@Description	Returns the authenticated user's account record
//	@Tags			profile
//	@Produce		json
//	@Success		200	{object}	ProfileResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/profile [get]
func (h *GetProfileHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	p, err := h.svc.Profile.Get(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProfileResponse(p))
}

// UpgradePlanHandler handles POST /profile/upgrade requests.
type UpgradePlanHandler struct {
	svc *appsvcs.Services
}

// NewUpgradePlanHandler returns an UpgradePlanHandler backed by the given services.
func NewUpgradePlanHandler(svc *appsvcs.Services) *UpgradePlanHandler {
	return &UpgradePlanHandler{svc: svc}
}

// Execute upgrades the user to the pro plan. The payment is confirmed by the
// caller before this endpoint is hit.
//
//	@Summary		Upgrade plan
//	@Description	Moves the authenticated user to the pro tier, lifting the item quota
//	@Tags			profile
//	@Produce		json
//	@Success		200	{object}	ProfileResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/profile/upgrade [post]
func (h *UpgradePlanHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	if err := h.svc.Profile.UpgradePlan(r.Context(), userID); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	p, err := h.svc.Profile.Get(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProfileResponse(p))
}

// UpdateThemeHandler handles PUT /profile/theme requests.
type UpdateThemeHandler struct {
	svc *appsvcs.Services
}

// NewUpdateThemeHandler returns an UpdateThemeHandler backed by the given services.
func NewUpdateThemeHandler(svc *appsvcs.Services) *UpdateThemeHandler {
	return &UpdateThemeHandler{svc: svc}
}

// Execute sets the display theme preference.
//
//	@Summary		Update theme
//	@Description	Sets the authenticated user's display theme (system, light or dark)
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Param			request	body	UpdateThemeRequest	true	"Theme to apply"
//	@Success		204		"theme updated"
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/profile/theme [put]
func (h *UpdateThemeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateThemeRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.Profile.UpdateTheme(r.Context(), userID, req.Theme); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
