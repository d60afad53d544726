package handler

import (
	"context"
	"net/http"

	"flight-fare-ledger/internal/model"
	"flight-fare-ledger/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FareHandler struct {
	ledger service.LedgerService
}

func NewFareHandler(ledger service.LedgerService) *FareHandler {
	return &FareHandler{ledger: ledger}
}

func (h *FareHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("inventories/:id/fares", h.AddSeats)
		router.GET("fares/:id", h.Get)
		router.GET("fares/:id/availability", h.Availability)
		router.GET("fares/:id/movements", h.Movements)
		router.POST("fares/:id/seats/add", h.AddMoreSeats)
		router.POST("fares/:id/seats/minus", h.MinusSeats)
		router.PATCH("fares/:id/markup", h.UpdateMarkup)
	}
}

func (h *FareHandler) AddSeats(c *gin.Context) {
	inventoryID, ok := ParamUUID(c, "id")
	if !ok {
		return
	}
	var req model.AddSeatsRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	created, err := h.ledger.AddSeats(c, inventoryID, req)
	if err != nil {
		handleError(c, err, "AddSeats")
		return
	}
	handleSuccess(c, created.ToResponse(), http.StatusCreated)
}

func (h *FareHandler) Get(c *gin.Context) {
	id, ok := ParamUUID(c, "id")
	if !ok {
		return
	}

	f, err := h.ledger.GetFare(c, id)
	if err != nil {
		handleError(c, err, "GetFare")
		return
	}
	handleSuccess(c, f.ToResponse(), http.StatusOK)
}

func (h *FareHandler) Availability(c *gin.Context) {
	id, ok := ParamUUID(c, "id")
	if !ok {
		return
	}

	availability, err := h.ledger.GetAvailability(c, id)
	if err != nil {
		handleError(c, err, "GetAvailability")
		return
	}
	handleSuccess(c, availability, http.StatusOK)
}

func (h *FareHandler) Movements(c *gin.Context) {
	id, ok := ParamUUID(c, "id")
	if !ok {
		return
	}

	movements, err := h.ledger.ListMovements(c, id)
	if err != nil {
		handleError(c, err, "ListMovements")
		return
	}
	handleSuccess(c, movements, http.StatusOK)
}

func (h *FareHandler) AddMoreSeats(c *gin.Context) {
	h.adjustSeats(c, "AddMoreSeats", h.ledger.AddMoreSeats)
}

func (h *FareHandler) MinusSeats(c *gin.Context) {
	h.adjustSeats(c, "MinusSeats", h.ledger.MinusSeats)
}

func (h *FareHandler) adjustSeats(c *gin.Context, operation string, adjust func(context.Context, uuid.UUID, int) (*model.FareRecord, error)) {
	id, ok := ParamUUID(c, "id")
	if !ok {
		return
	}
	var req model.SeatAdjustRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	updated, err := adjust(c, id, req.Seats)
	if err != nil {
		handleError(c, err, operation)
		return
	}
	handleSuccess(c, updated.ToResponse(), http.StatusOK)
}

func (h *FareHandler) UpdateMarkup(c *gin.Context) {
	id, ok := ParamUUID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateMarkupRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	result, err := h.ledger.UpdateFareMarkup(c, id, req)
	if err != nil {
		handleError(c, err, "UpdateFareMarkup")
		return
	}
	handleSuccess(c, result, http.StatusOK)
}
