package waybill_document_get

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

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

	document, err := h.service.Document(r.Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, waybill.ErrInvalidReference):
			respond.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, waybill.ErrWaybillNotFound):
			respond.Error(w, http.StatusNotFound, waybill.ErrWaybillNotFound.Error())
		default:
			h.log.Error("render waybill document",
				logger.NewField("reference", reference),
				logger.NewField("error", err),
			)
			respond.Error(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="waybill-%s.pdf"`, reference))
	w.Header().Set("Content-Length", strconv.Itoa(len(document)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(document); err != nil {
		h.log.Error("write waybill document", logger.NewField("error", err))
	}
}
