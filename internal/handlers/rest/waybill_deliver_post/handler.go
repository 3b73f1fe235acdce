package waybill_deliver_post

import (
	"errors"
	"net/http"

	"freightforge/internal/handlers/rest/presenter"
	"freightforge/internal/pkg/respond"
	"freightforge/internal/service/waybill"
	"freightforge/pkg/logger"

	"github.com/gorilla/mux"
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
	reference := mux.Vars(r)["ref"]

	delivered, err := h.service.AdvanceToDelivered(r.Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, waybill.ErrInvalidReference):
			respond.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, waybill.ErrWaybillNotFound):
			respond.Error(w, http.StatusNotFound, waybill.ErrWaybillNotFound.Error())
		case errors.Is(err, waybill.ErrAlreadyDelivered):
			respond.Error(w, http.StatusConflict, waybill.ErrAlreadyDelivered.Error())
		default:
			h.log.Error("deliver waybill",
				logger.NewField("reference", reference),
				logger.NewField("error", err),
			)
			respond.Error(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	if err := respond.JSON(w, http.StatusOK, presenter.Waybill(*delivered)); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}
