package handler

import (
	"net/http"

	"flight-fare-ledger/internal/model"
	"flight-fare-ledger/internal/service"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventory service.InventoryService
	ledger    service.LedgerService
}

func NewInventoryHandler(inventory service.InventoryService, ledger service.LedgerService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory, ledger: ledger}
}

func (h *InventoryHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("inventories", h.List)
		router.GET("inventories/search", h.Search)
		router.GET("inventories/:id", h.Get)
		router.POST("inventories", h.Create)
		router.PATCH("inventories/:id/enabled", h.ToggleEnabled)
	}
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req model.CreateInventoryRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	created, err := h.inventory.Create(c, req)
	if err != nil {
		handleError(c, err, "CreateInventory")
		return
	}
	handleSuccess(c, created, http.StatusCreated)
}

func (h *InventoryHandler) Get(c *gin.Context) {
	id, ok := ParamUUID(c, "id")
	if !ok {
		return
	}

	inv, err := h.inventory.Get(c, id)
	if err != nil {
		handleError(c, err, "GetInventory")
		return
	}
	handleSuccess(c, inv, http.StatusOK)
}

func (h *InventoryHandler) List(c *gin.Context) {
	inventories, err := h.inventory.List(c)
	if err != nil {
		handleError(c, err, "ListInventories")
		return
	}
	handleSuccess(c, inventories, http.StatusOK)
}

func (h *InventoryHandler) Search(c *gin.Context) {
	var req model.SearchInventoryRequest
	if err := BindQuery(c, &req); err != nil {
		return
	}

	inventories, err := h.inventory.Search(c, req)
	if err != nil {
		handleError(c, err, "SearchInventories")
		return
	}
	handleSuccess(c, inventories, http.StatusOK)
}

func (h *InventoryHandler) ToggleEnabled(c *gin.Context) {
	id, ok := ParamUUID(c, "id")
	if !ok {
		return
	}
	var req model.ToggleEnabledRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.Enabled == nil {
		badRequest(c, "enabled is required")
		return
	}

	inv, err := h.ledger.ToggleEnabled(c, id, *req.Enabled)
	if err != nil {
		handleError(c, err, "ToggleEnabled")
		return
	}
	handleSuccess(c, inv, http.StatusOK)
}
