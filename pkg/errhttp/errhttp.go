// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/warehouse/pkg/httpx"
	warehousedomain "github.com/ghuser/warehouse/services/warehouse/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// For ledger rejections the body carries the stable rejection code verbatim
// (e.g. {"error":"NO_AVAILABLE_ITEM"}) so clients can match on it.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), messageFor(err))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, warehousedomain.ErrIllegalSender):
		return http.StatusForbidden // 403
	case errors.Is(err, warehousedomain.ErrItemNotFound),
		errors.Is(err, warehousedomain.ErrInstanceNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, warehousedomain.ErrItemAlreadyExists),
		errors.Is(err, warehousedomain.ErrInstanceAlreadyAssigned),
		errors.Is(err, warehousedomain.ErrInventoryEntryExists):
		return http.StatusConflict // 409
	case errors.Is(err, warehousedomain.ErrItemFrozen),
		errors.Is(err, warehousedomain.ErrItemNotFrozen),
		errors.Is(err, warehousedomain.ErrNoAvailableItem),
		errors.Is(err, warehousedomain.ErrLastOwner),
		errors.Is(err, warehousedomain.ErrInvalidItemName):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}

// messageFor strips wrapping context from ledger rejections so the response
// body is exactly the rejection code.
func messageFor(err error) string {
	for _, sentinel := range []error{
		warehousedomain.ErrIllegalSender,
		warehousedomain.ErrItemAlreadyExists,
		warehousedomain.ErrItemNotFound,
		warehousedomain.ErrItemFrozen,
		warehousedomain.ErrItemNotFrozen,
		warehousedomain.ErrNoAvailableItem,
		warehousedomain.ErrInstanceAlreadyAssigned,
		warehousedomain.ErrInstanceNotFound,
		warehousedomain.ErrInventoryEntryExists,
		warehousedomain.ErrLastOwner,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
