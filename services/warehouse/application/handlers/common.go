// Package handlers contains the HTTP handlers for the warehouse and inventory
// API surface. Each handler decodes and validates its request, resolves the
// caller from the session context where the operation is owner-gated, invokes
// the application service, and maps the result through httpx/errhttp.
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/warehouse/pkg/auth"
	"github.com/ghuser/warehouse/pkg/httpx"
	"github.com/ghuser/warehouse/services/warehouse/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"ITEM_ID_DOESNT_EXIST"`
} // @name ErrorResponse

// GatePayload is the wire form of an item's mutability gate. frozen wins over
// no_update_after; with neither set the item is freely mutable.
type GatePayload struct {
	Frozen        bool       `json:"frozen"`
	NoUpdateAfter *time.Time `json:"no_update_after,omitempty" example:"2026-01-15T10:30:00Z"`
} // @name GatePayload

func (g GatePayload) toGate() models.Gate {
	switch {
	case g.Frozen:
		return models.FrozenGate()
	case g.NoUpdateAfter != nil:
		return models.MutableUntilGate(g.NoUpdateAfter.UTC())
	default:
		return models.MutableGate()
	}
}

func gatePayloadFrom(gate models.Gate) GatePayload {
	p := GatePayload{Frozen: gate.Kind == models.GateFrozen}
	if gate.Kind == models.GateMutableUntil {
		until := gate.Until.UTC()
		p.NoUpdateAfter = &until
	}
	return p
}

// ItemResponse is the wire form of a catalog item.
type ItemResponse struct {
	ItemID            uint64            `json:"item_id" example:"0"`
	Name              string            `json:"name" example:"sword_of_dawn"`
	TotalQuantity     uint64            `json:"total_quantity" example:"10"`
	AvailableQuantity uint64            `json:"available_quantity" example:"9"`
	Data              map[string]string `json:"data"`
	Gate              GatePayload       `json:"gate"`
} // @name ItemResponse

func itemResponseFrom(item *models.Item) ItemResponse {
	return ItemResponse{
		ItemID:            item.ID,
		Name:              item.Name.String(),
		TotalQuantity:     item.TotalQuantity,
		AvailableQuantity: item.AvailableQuantity,
		Data:              item.Data,
		Gate:              gatePayloadFrom(item.Gate),
	}
}

// InstanceResponse is the wire form of an assigned item instance.
type InstanceResponse struct {
	ItemID         uint64            `json:"item_id" example:"0"`
	InstanceNumber uint64            `json:"instance_number" example:"1"`
	UserID         string            `json:"user_id" example:"user_123"`
	Data           map[string]string `json:"data"`
} // @name InstanceResponse

func instanceResponseFrom(instance *models.Instance) InstanceResponse {
	return InstanceResponse{
		ItemID:         instance.ItemID,
		InstanceNumber: instance.InstanceNumber,
		UserID:         instance.UserID,
		Data:           instance.Data,
	}
}

// InventoryEntryResponse is the wire form of a user inventory entry.
type InventoryEntryResponse struct {
	UserID         string            `json:"user_id" example:"user_123"`
	ItemID         uint64            `json:"item_id" example:"0"`
	InstanceNumber uint64            `json:"instance_number" example:"1"`
	Data           map[string]string `json:"data"`
} // @name InventoryEntryResponse

func inventoryEntryResponseFrom(entry *models.InventoryEntry) InventoryEntryResponse {
	return InventoryEntryResponse{
		UserID:         entry.UserID,
		ItemID:         entry.ItemID,
		InstanceNumber: entry.InstanceNumber,
		Data:           entry.Data,
	}
}

// caller resolves the authenticated caller address; writes 401 and returns
// false if the session middleware did not run or the session is empty.
func caller(w http.ResponseWriter, r *http.Request) (string, bool) {
	addr, err := auth.CallerFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return "", false
	}
	return addr, true
}

// pathUint parses a numeric chi URL parameter; writes 400 and returns false
// on a malformed value.
func pathUint(w http.ResponseWriter, r *http.Request, name string) (uint64, bool) {
	v, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return v, true
}
