package handlers

import (
	"net/http"

	"github.com/ghuser/warehouse/pkg/errhttp"
	"github.com/ghuser/warehouse/pkg/httpx"
	pkgvalidator "github.com/ghuser/warehouse/pkg/validator"
	appsvcs "github.com/ghuser/warehouse/services/warehouse/application/services"
	"github.com/ghuser/warehouse/services/warehouse/domain/models"
)

// AddItemRequest is the request body for POST /warehouse/items.
type AddItemRequest struct {
	ItemID            uint64            `json:"item_id" validate:"gte=0" example:"0"`
	Name              string            `json:"name" validate:"required,min=1,max=255" example:"sword_of_dawn"`
	TotalQuantity     uint64            `json:"total_quantity" example:"10"`
	AvailableQuantity uint64            `json:"available_quantity" example:"10"`
	Data              map[string]string `json:"data"`
	Gate              GatePayload       `json:"gate"`
} // @name AddItemRequest

// PostItemHandler handles POST /warehouse/items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new catalog item.
//
//	@Summary		Add item
//	@Description	Creates a new catalog item under a caller-chosen id
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AddItemRequest	true	"Item creation request"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/warehouse/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	addr, ok := caller(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[AddItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Warehouse.AddItem(r.Context(), addr, appsvcs.AddItemParams{
		ItemID:            req.ItemID,
		Name:              req.Name,
		TotalQuantity:     req.TotalQuantity,
		AvailableQuantity: req.AvailableQuantity,
		Data:              models.DataMap(req.Data),
		Gate:              req.Gate.toGate(),
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, itemResponseFrom(item))
}

// UpdateItemRequest is the request body for PUT /warehouse/items/{itemID}.
// The whole record is replaced; data is replace-not-merge.
type UpdateItemRequest struct {
	Name              string            `json:"name" validate:"required,min=1,max=255" example:"sword_of_dawn"`
	TotalQuantity     uint64            `json:"total_quantity" example:"10"`
	AvailableQuantity uint64            `json:"available_quantity" example:"10"`
	Data              map[string]string `json:"data"`
	Gate              GatePayload       `json:"gate"`
} // @name UpdateItemRequest

// PutItemHandler handles PUT /warehouse/items/{itemID} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute replaces an existing item's record wholesale.
//
//	@Summary		Update item
//	@Description	Replaces every mutable field of an existing item
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			itemID	path		int					true	"Item id"
//	@Param			request	body		UpdateItemRequest	true	"Item replacement request"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/warehouse/items/{itemID} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	addr, ok := caller(w, r)
	if !ok {
		return
	}
	itemID, ok := pathUint(w, r, "itemID")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Warehouse.UpdateItem(r.Context(), addr, appsvcs.UpdateItemParams{
		ItemID:            itemID,
		Name:              req.Name,
		TotalQuantity:     req.TotalQuantity,
		AvailableQuantity: req.AvailableQuantity,
		Data:              models.DataMap(req.Data),
		Gate:              req.Gate.toGate(),
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, itemResponseFrom(item))
}

// FreezeItemHandler handles POST /warehouse/items/{itemID}/freeze requests.
type FreezeItemHandler struct {
	svc *appsvcs.Services
}

// NewFreezeItemHandler returns a FreezeItemHandler backed by the given services.
func NewFreezeItemHandler(svc *appsvcs.Services) *FreezeItemHandler {
	return &FreezeItemHandler{svc: svc}
}

// Execute latches an item's gate to permanently immutable.
//
//	@Summary		Freeze item
//	@Description	Permanently freezes an item; idempotent on already-frozen items
//	@Tags			items
//	@Produce		json
//	@Param			itemID	path		int	true	"Item id"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/warehouse/items/{itemID}/freeze [post]
func (h *FreezeItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	addr, ok := caller(w, r)
	if !ok {
		return
	}
	itemID, ok := pathUint(w, r, "itemID")
	if !ok {
		return
	}

	item, err := h.svc.Warehouse.FreezeItem(r.Context(), addr, itemID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, itemResponseFrom(item))
}

// GetItemHandler handles GET /warehouse/items/{itemID} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute retrieves a catalog item.
//
//	@Summary		Get item
//	@Description	Retrieves a catalog item, served from the Redis read model when warm
//	@Tags			items
//	@Produce		json
//	@Param			itemID	path		int	true	"Item id"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/warehouse/items/{itemID} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathUint(w, r, "itemID")
	if !ok {
		return
	}

	item, err := h.svc.Warehouse.GetItem(r.Context(), itemID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, itemResponseFrom(item))
}
