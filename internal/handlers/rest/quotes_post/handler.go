package quotes_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"freightforge/internal/entities"
	"freightforge/internal/generated/dto"
	"freightforge/internal/handlers/rest/presenter"
	"freightforge/internal/pkg/respond"
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
	var quoteDTO dto.QuoteRequest
	err := json.NewDecoder(r.Body).Decode(&quoteDTO)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	quote, err := h.service.Quote(r.Context(), entities.BookingRequest{
		GoodsType:    entities.GoodsType(quoteDTO.GoodsType),
		QuantityTons: quoteDTO.QuantityTons,
		Origin:       quoteDTO.Origin,
		Destination:  quoteDTO.Destination,
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidGoodsType),
			errors.Is(err, booking.ErrInvalidQuantity):
			respond.Error(w, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("quote freight", logger.NewField("error", err))
			respond.Error(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	if err := respond.JSON(w, http.StatusOK, presenter.Quote(*quote)); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}
