package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/warehouse/pkg/errhttp"
	"github.com/ghuser/warehouse/pkg/httpx"
	pkgvalidator "github.com/ghuser/warehouse/pkg/validator"
	appsvcs "github.com/ghuser/warehouse/services/warehouse/application/services"
	"github.com/ghuser/warehouse/services/warehouse/domain/models"
)

// InventoryEntryRequest is the request body for inventory entry creation and
// replacement. The tuple (user_id, item_id, instance_number) is the key.
type InventoryEntryRequest struct {
	UserID         string            `json:"user_id" validate:"required,min=1" example:"user_123"`
	ItemID         uint64            `json:"item_id" example:"0"`
	InstanceNumber uint64            `json:"instance_number" example:"1"`
	Data           map[string]string `json:"data"`
} // @name InventoryEntryRequest

// AssignEntryHandler handles POST /inventory/entries requests.
type AssignEntryHandler struct {
	svc *appsvcs.Services
}

// NewAssignEntryHandler returns an AssignEntryHandler backed by the given services.
func NewAssignEntryHandler(svc *appsvcs.Services) *AssignEntryHandler {
	return &AssignEntryHandler{svc: svc}
}

// Execute creates an inventory entry. The inventory ledger carries no owner
// gate: any caller may record an entry.
//
//	@Summary		Assign inventory entry
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			request	body		InventoryEntryRequest	true	"Entry creation request"
//	@Success		201		{object}	InventoryEntryResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/inventory/entries [post]
func (h *AssignEntryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[InventoryEntryRequest](w, r)
	if !ok {
		return
	}

	entry, err := h.svc.Inventory.AssignEntry(r.Context(), req.UserID, req.ItemID, req.InstanceNumber, models.DataMap(req.Data))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, inventoryEntryResponseFrom(entry))
}

// UpdateEntryHandler handles PUT /inventory/entries requests.
type UpdateEntryHandler struct {
	svc *appsvcs.Services
}

// NewUpdateEntryHandler returns an UpdateEntryHandler backed by the given services.
func NewUpdateEntryHandler(svc *appsvcs.Services) *UpdateEntryHandler {
	return &UpdateEntryHandler{svc: svc}
}

// Execute replaces an existing entry's data wholesale.
//
//	@Summary		Update inventory entry
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			request	body		InventoryEntryRequest	true	"Entry replacement request"
//	@Success		200		{object}	InventoryEntryResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/inventory/entries [put]
func (h *UpdateEntryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[InventoryEntryRequest](w, r)
	if !ok {
		return
	}

	entry, err := h.svc.Inventory.UpdateEntry(r.Context(), req.UserID, req.ItemID, req.InstanceNumber, models.DataMap(req.Data))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, inventoryEntryResponseFrom(entry))
}

// GetEntryHandler handles GET /inventory/{userID}/items/{itemID}/{instanceNumber} requests.
type GetEntryHandler struct {
	svc *appsvcs.Services
}

// NewGetEntryHandler returns a GetEntryHandler backed by the given services.
func NewGetEntryHandler(svc *appsvcs.Services) *GetEntryHandler {
	return &GetEntryHandler{svc: svc}
}

// Execute retrieves an inventory entry by its full key tuple.
//
//	@Summary		Get inventory entry
//	@Tags			inventory
//	@Produce		json
//	@Param			userID			path		string	true	"User id"
//	@Param			itemID			path		int		true	"Item id"
//	@Param			instanceNumber	path		int		true	"Instance number"
//	@Success		200				{object}	InventoryEntryResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Router			/inventory/{userID}/items/{itemID}/{instanceNumber} [get]
func (h *GetEntryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		httpx.JSONError(w, http.StatusBadRequest, "invalid userID")
		return
	}
	itemID, ok := pathUint(w, r, "itemID")
	if !ok {
		return
	}
	instanceNumber, ok := pathUint(w, r, "instanceNumber")
	if !ok {
		return
	}

	entry, err := h.svc.Inventory.GetEntry(r.Context(), userID, itemID, instanceNumber)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, inventoryEntryResponseFrom(entry))
}
