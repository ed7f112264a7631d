package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/warehouse/pkg/errhttp"
	"github.com/ghuser/warehouse/pkg/httpx"
	pkgvalidator "github.com/ghuser/warehouse/pkg/validator"
	appsvcs "github.com/ghuser/warehouse/services/warehouse/application/services"
)

// OwnersResponse lists the owner set in insertion order.
type OwnersResponse struct {
	Owners []string `json:"owners" example:"tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb"`
} // @name OwnersResponse

// AddOwnerRequest is the request body for POST /warehouse/owners.
type AddOwnerRequest struct {
	Address string `json:"address" validate:"required,min=1" example:"tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb"`
} // @name AddOwnerRequest

// ListOwnersHandler handles GET /warehouse/owners requests.
type ListOwnersHandler struct {
	svc *appsvcs.Services
}

// NewListOwnersHandler returns a ListOwnersHandler backed by the given services.
func NewListOwnersHandler(svc *appsvcs.Services) *ListOwnersHandler {
	return &ListOwnersHandler{svc: svc}
}

// Execute lists the current owner set.
//
//	@Summary		List owners
//	@Tags			owners
//	@Produce		json
//	@Success		200	{object}	OwnersResponse
//	@Router			/warehouse/owners [get]
func (h *ListOwnersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	owners, err := h.svc.Warehouse.ListOwners(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, OwnersResponse{Owners: owners})
}

// AddOwnerHandler handles POST /warehouse/owners requests.
type AddOwnerHandler struct {
	svc *appsvcs.Services
}

// NewAddOwnerHandler returns an AddOwnerHandler backed by the given services.
func NewAddOwnerHandler(svc *appsvcs.Services) *AddOwnerHandler {
	return &AddOwnerHandler{svc: svc}
}

// Execute adds an address to the owner set; adding an existing owner is an
// idempotent success.
//
//	@Summary		Add owner
//	@Tags			owners
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AddOwnerRequest	true	"Owner address"
//	@Success		200		{object}	OwnersResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Router			/warehouse/owners [post]
func (h *AddOwnerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	addr, ok := caller(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[AddOwnerRequest](w, r)
	if !ok {
		return
	}

	owners, err := h.svc.Warehouse.AddOwner(r.Context(), addr, req.Address)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, OwnersResponse{Owners: owners})
}

// RemoveOwnerHandler handles DELETE /warehouse/owners/{address} requests.
type RemoveOwnerHandler struct {
	svc *appsvcs.Services
}

// NewRemoveOwnerHandler returns a RemoveOwnerHandler backed by the given services.
func NewRemoveOwnerHandler(svc *appsvcs.Services) *RemoveOwnerHandler {
	return &RemoveOwnerHandler{svc: svc}
}

// Execute removes an address from the owner set. Removing the last owner is
// rejected; removing an absent address is a no-op.
//
//	@Summary		Remove owner
//	@Tags			owners
//	@Produce		json
//	@Param			address	path		string	true	"Owner address"
//	@Success		200		{object}	OwnersResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/warehouse/owners/{address} [delete]
func (h *RemoveOwnerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	addr, ok := caller(w, r)
	if !ok {
		return
	}
	target := chi.URLParam(r, "address")
	if target == "" {
		httpx.JSONError(w, http.StatusBadRequest, "invalid address")
		return
	}

	owners, err := h.svc.Warehouse.RemoveOwner(r.Context(), addr, target)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, OwnersResponse{Owners: owners})
}
