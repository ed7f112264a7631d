package handlers

import (
	"net/http"

	"github.com/ghuser/warehouse/pkg/errhttp"
	"github.com/ghuser/warehouse/pkg/httpx"
	pkgvalidator "github.com/ghuser/warehouse/pkg/validator"
	appsvcs "github.com/ghuser/warehouse/services/warehouse/application/services"
	"github.com/ghuser/warehouse/services/warehouse/domain/models"
)

// AssignItemRequest is the request body for instance assignment.
type AssignItemRequest struct {
	InstanceNumber uint64 `json:"instance_number" example:"1"`
	UserID         string `json:"user_id" validate:"required,min=1" example:"user_123"`
} // @name AssignItemRequest

// AssignItemHandler handles POST /warehouse/items/{itemID}/instances requests.
type AssignItemHandler struct {
	svc *appsvcs.Services
}

// NewAssignItemHandler returns an AssignItemHandler backed by the given services.
func NewAssignItemHandler(svc *appsvcs.Services) *AssignItemHandler {
	return &AssignItemHandler{svc: svc}
}

// Execute assigns one instance of a frozen item to a user.
//
//	@Summary		Assign item
//	@Description	Creates an instance under the given number and decrements availability by one
//	@Tags			instances
//	@Accept			json
//	@Produce		json
//	@Param			itemID	path		int					true	"Item id"
//	@Param			request	body		AssignItemRequest	true	"Assignment request"
//	@Success		201		{object}	InstanceResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/warehouse/items/{itemID}/instances [post]
func (h *AssignItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	addr, ok := caller(w, r)
	if !ok {
		return
	}
	itemID, ok := pathUint(w, r, "itemID")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[AssignItemRequest](w, r)
	if !ok {
		return
	}

	instance, err := h.svc.Warehouse.AssignItem(r.Context(), addr, itemID, req.InstanceNumber, req.UserID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, instanceResponseFrom(instance))
}

// AssignWithInventoryRequest is the request body for the proxied assignment
// that also creates the matching user inventory entry atomically.
type AssignWithInventoryRequest struct {
	InstanceNumber uint64            `json:"instance_number" example:"1"`
	UserID         string            `json:"user_id" validate:"required,min=1" example:"user_123"`
	Data           map[string]string `json:"data"`
} // @name AssignWithInventoryRequest

// AssignWithInventoryResponse carries both sides of the proxied assignment.
type AssignWithInventoryResponse struct {
	Instance InstanceResponse       `json:"instance"`
	Entry    InventoryEntryResponse `json:"entry"`
} // @name AssignWithInventoryResponse

// AssignWithInventoryHandler handles
// POST /warehouse/items/{itemID}/instances/assign-with-inventory requests.
type AssignWithInventoryHandler struct {
	svc *appsvcs.Services
}

// NewAssignWithInventoryHandler returns an AssignWithInventoryHandler backed
// by the given services.
func NewAssignWithInventoryHandler(svc *appsvcs.Services) *AssignWithInventoryHandler {
	return &AssignWithInventoryHandler{svc: svc}
}

// Execute assigns an instance and creates the user's inventory entry as one
// transaction; a failure on either side leaves both ledgers untouched.
//
//	@Summary		Assign item with inventory entry
//	@Description	Atomic assignment across the warehouse and inventory ledgers
//	@Tags			instances
//	@Accept			json
//	@Produce		json
//	@Param			itemID	path		int							true	"Item id"
//	@Param			request	body		AssignWithInventoryRequest	true	"Proxied assignment request"
//	@Success		201		{object}	AssignWithInventoryResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/warehouse/items/{itemID}/instances/assign-with-inventory [post]
func (h *AssignWithInventoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	addr, ok := caller(w, r)
	if !ok {
		return
	}
	itemID, ok := pathUint(w, r, "itemID")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[AssignWithInventoryRequest](w, r)
	if !ok {
		return
	}

	instance, entry, err := h.svc.Warehouse.AssignItemWithInventory(
		r.Context(), addr, itemID, req.InstanceNumber, req.UserID, models.DataMap(req.Data))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, AssignWithInventoryResponse{
		Instance: instanceResponseFrom(instance),
		Entry:    inventoryEntryResponseFrom(entry),
	})
}

// UpdateInstanceRequest is the request body for instance data replacement.
type UpdateInstanceRequest struct {
	Data map[string]string `json:"data"`
} // @name UpdateInstanceRequest

// UpdateInstanceHandler handles
// PUT /warehouse/items/{itemID}/instances/{instanceNumber} requests.
type UpdateInstanceHandler struct {
	svc *appsvcs.Services
}

// NewUpdateInstanceHandler returns an UpdateInstanceHandler backed by the
// given services.
func NewUpdateInstanceHandler(svc *appsvcs.Services) *UpdateInstanceHandler {
	return &UpdateInstanceHandler{svc: svc}
}

// Execute replaces an instance's data wholesale.
//
//	@Summary		Update instance
//	@Description	Replaces the instance's data map; the holder is unchanged
//	@Tags			instances
//	@Accept			json
//	@Produce		json
//	@Param			itemID			path		int						true	"Item id"
//	@Param			instanceNumber	path		int						true	"Instance number"
//	@Param			request			body		UpdateInstanceRequest	true	"Instance data replacement"
//	@Success		200				{object}	InstanceResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		401				{object}	ErrorResponse
//	@Failure		403				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Router			/warehouse/items/{itemID}/instances/{instanceNumber} [put]
func (h *UpdateInstanceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	addr, ok := caller(w, r)
	if !ok {
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
	req, ok := pkgvalidator.ValidateRequest[UpdateInstanceRequest](w, r)
	if !ok {
		return
	}

	instance, err := h.svc.Warehouse.UpdateInstance(r.Context(), addr, itemID, instanceNumber, models.DataMap(req.Data))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, instanceResponseFrom(instance))
}

// TransferInstanceRequest is the request body for instance transfer.
type TransferInstanceRequest struct {
	UserID string `json:"user_id" validate:"required,min=1" example:"user_124"`
} // @name TransferInstanceRequest

// TransferInstanceHandler handles
// POST /warehouse/items/{itemID}/instances/{instanceNumber}/transfer requests.
type TransferInstanceHandler struct {
	svc *appsvcs.Services
}

// NewTransferInstanceHandler returns a TransferInstanceHandler backed by the
// given services.
func NewTransferInstanceHandler(svc *appsvcs.Services) *TransferInstanceHandler {
	return &TransferInstanceHandler{svc: svc}
}

// Execute reassigns an instance to a new holder.
//
//	@Summary		Transfer instance
//	@Description	Replaces the instance's holder; its data is unchanged
//	@Tags			instances
//	@Accept			json
//	@Produce		json
//	@Param			itemID			path		int						true	"Item id"
//	@Param			instanceNumber	path		int						true	"Instance number"
//	@Param			request			body		TransferInstanceRequest	true	"Transfer request"
//	@Success		200				{object}	InstanceResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		401				{object}	ErrorResponse
//	@Failure		403				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Router			/warehouse/items/{itemID}/instances/{instanceNumber}/transfer [post]
func (h *TransferInstanceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	addr, ok := caller(w, r)
	if !ok {
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
	req, ok := pkgvalidator.ValidateRequest[TransferInstanceRequest](w, r)
	if !ok {
		return
	}

	instance, err := h.svc.Warehouse.TransferInstance(r.Context(), addr, itemID, instanceNumber, req.UserID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, instanceResponseFrom(instance))
}

// GetInstanceHandler handles
// GET /warehouse/items/{itemID}/instances/{instanceNumber} requests.
type GetInstanceHandler struct {
	svc *appsvcs.Services
}

// NewGetInstanceHandler returns a GetInstanceHandler backed by the given services.
func NewGetInstanceHandler(svc *appsvcs.Services) *GetInstanceHandler {
	return &GetInstanceHandler{svc: svc}
}

// Execute retrieves an instance by its (item id, instance number) key.
//
//	@Summary		Get instance
//	@Tags			instances
//	@Produce		json
//	@Param			itemID			path		int	true	"Item id"
//	@Param			instanceNumber	path		int	true	"Instance number"
//	@Success		200				{object}	InstanceResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Router			/warehouse/items/{itemID}/instances/{instanceNumber} [get]
func (h *GetInstanceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathUint(w, r, "itemID")
	if !ok {
		return
	}
	instanceNumber, ok := pathUint(w, r, "instanceNumber")
	if !ok {
		return
	}

	instance, err := h.svc.Warehouse.GetInstance(r.Context(), itemID, instanceNumber)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, instanceResponseFrom(instance))
}
