package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	warehousedomain "github.com/ghuser/warehouse/services/warehouse/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrIllegalSender", warehousedomain.ErrIllegalSender, http.StatusForbidden},
		{"ErrItemNotFound", warehousedomain.ErrItemNotFound, http.StatusNotFound},
		{"ErrInstanceNotFound", warehousedomain.ErrInstanceNotFound, http.StatusNotFound},
		{"ErrItemAlreadyExists", warehousedomain.ErrItemAlreadyExists, http.StatusConflict},
		{"ErrInstanceAlreadyAssigned", warehousedomain.ErrInstanceAlreadyAssigned, http.StatusConflict},
		{"ErrInventoryEntryExists", warehousedomain.ErrInventoryEntryExists, http.StatusConflict},
		{"ErrItemFrozen", warehousedomain.ErrItemFrozen, http.StatusUnprocessableEntity},
		{"ErrItemNotFrozen", warehousedomain.ErrItemNotFrozen, http.StatusUnprocessableEntity},
		{"ErrNoAvailableItem", warehousedomain.ErrNoAvailableItem, http.StatusUnprocessableEntity},
		{"ErrLastOwner", warehousedomain.ErrLastOwner, http.StatusUnprocessableEntity},
		{"ErrInvalidItemName", warehousedomain.ErrInvalidItemName, http.StatusUnprocessableEntity},
		{"wrapped ErrItemNotFound", fmt.Errorf("get item: %w", warehousedomain.ErrItemNotFound), http.StatusNotFound},
		{"wrapped ErrIllegalSender", fmt.Errorf("add owner: %w", warehousedomain.ErrIllegalSender), http.StatusForbidden},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

// Clients match on the rejection code verbatim, so wrapping context added by
// the service layer must be stripped from the response body.
func TestWriteError_BodyCarriesRejectionCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantBody string
	}{
		{"bare sentinel", warehousedomain.ErrNoAvailableItem, "NO_AVAILABLE_ITEM"},
		{"wrapped sentinel", fmt.Errorf("assign item 7: %w", warehousedomain.ErrItemNotFrozen), "ITEM_MUST_BE_FROZEN_BEFORE_ASSIGN"},
		{"double wrapped", fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", warehousedomain.ErrIllegalSender)), "ILLEGAL_SENDER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("response body is not valid JSON: %v", err)
			}
			if body["error"] != tt.wantBody {
				t.Fatalf("expected error %q, got %q", tt.wantBody, body["error"])
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, warehousedomain.ErrItemNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("response body missing 'error' key")
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, warehousedomain.ErrItemNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
