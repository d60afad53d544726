package handler

import (
	"net/http"

	"flight-fare-ledger/internal/model"
	"flight-fare-ledger/internal/service"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service service.BookingService
}

func NewBookingHandler(service service.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("quotes", h.CreateQuote)
		router.GET("quotes/:id", h.GetQuote)
		router.POST("bookings", h.Confirm)
		router.GET("bookings/:id", h.GetBooking)
		router.POST("bookings/:id/cancel", h.Cancel)
	}
}

func (h *BookingHandler) CreateQuote(c *gin.Context) {
	var req model.CreateQuoteRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	quote, err := h.service.CreateQuote(c, req)
	if err != nil {
		handleError(c, err, "CreateQuote")
		return
	}
	handleSuccess(c, quote, http.StatusCreated)
}

func (h *BookingHandler) GetQuote(c *gin.Context) {
	id, ok := ParamUUID(c, "id")
	if !ok {
		return
	}

	quote, err := h.service.GetQuote(c, id)
	if err != nil {
		handleError(c, err, "GetQuote")
		return
	}
	handleSuccess(c, quote, http.StatusOK)
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	var req model.ConfirmBookingRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	booking, err := h.service.ConfirmBooking(c, req)
	if err != nil {
		handleError(c, err, "ConfirmBooking")
		return
	}
	handleSuccess(c, booking, http.StatusCreated)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := ParamUUID(c, "id")
	if !ok {
		return
	}

	booking, err := h.service.GetBooking(c, id)
	if err != nil {
		handleError(c, err, "GetBooking")
		return
	}
	handleSuccess(c, booking, http.StatusOK)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := ParamUUID(c, "id")
	if !ok {
		return
	}
	var req model.CancelBookingRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	booking, err := h.service.CancelBooking(c, id, req)
	if err != nil {
		handleError(c, err, "CancelBooking")
		return
	}
	handleSuccess(c, booking, http.StatusOK)
}
