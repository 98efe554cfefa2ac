// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/stockledger/pkg/auth"
	"github.com/ghuser/stockledger/pkg/httpx"
	invdomain "github.com/ghuser/stockledger/services/inventory/domain"
	profiledomain "github.com/ghuser/stockledger/services/profile/domain"
	salesdomain "github.com/ghuser/stockledger/services/sales/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, auth.ErrUserIDNotFound):
		return http.StatusUnauthorized // 401
	case errors.Is(err, invdomain.ErrQuotaExceeded):
		return http.StatusForbidden // 403
	case errors.Is(err, invdomain.ErrItemNotFound),
		errors.Is(err, salesdomain.ErrItemNotFound),
		errors.Is(err, salesdomain.ErrSaleNotFound),
		errors.Is(err, profiledomain.ErrProfileNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, invdomain.ErrDuplicateName),
		errors.Is(err, salesdomain.ErrInsufficientStock):
		return http.StatusConflict // 409
	case errors.Is(err, invdomain.ErrInvalidItemName),
		errors.Is(err, invdomain.ErrInvalidItem),
		errors.Is(err, salesdomain.ErrInvalidSale),
		errors.Is(err, profiledomain.ErrInvalidTheme):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
