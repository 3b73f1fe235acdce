package shipments_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"freightforge/internal/entities"
	"freightforge/internal/generated/dto"
	"freightforge/internal/handlers/rest/presenter"
	"freightforge/internal/pkg/middlewares/auth"
	"freightforge/internal/pkg/respond"
	"freightforge/internal/service/account"
	"freightforge/internal/service/booking"
	"freightforge/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	var shipmentDTO dto.ShipmentCreate
	err := json.NewDecoder(r.Body).Decode(&shipmentDTO)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	booked, err := h.service.Book(r.Context(), principal.Username, entities.BookingRequest{
		GoodsType:       entities.GoodsType(shipmentDTO.GoodsType),
		QuantityTons:    shipmentDTO.QuantityTons,
		Origin:          shipmentDTO.Origin,
		Destination:     shipmentDTO.Destination,
		DispatchDate:    shipmentDTO.DispatchDate.Time,
		TransportOption: shipmentDTO.TransportOption,
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidGoodsType),
			errors.Is(err, booking.ErrInvalidQuantity):
			respond.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, account.ErrAccountNotFound):
			respond.Error(w, http.StatusNotFound, err.Error())
		default:
			h.log.Error("book shipment",
				logger.NewField("username", principal.Username),
				logger.NewField("error", err),
			)
			respond.Error(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	response := dto.BookingResponse{
		Shipment: presenter.Shipment(booked.Shipment),
		Waybill:  presenter.Waybill(booked.Waybill),
	}
	if err := respond.JSON(w, http.StatusCreated, response); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}
