package accounts_pending_get

import (
	"net/http"

	"freightforge/internal/handlers/rest/presenter"
	"freightforge/internal/pkg/respond"
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
	pending, err := h.service.ListPending(r.Context())
	if err != nil {
		h.log.Error("list pending accounts", logger.NewField("error", err))
		respond.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := respond.JSON(w, http.StatusOK, presenter.Accounts(pending)); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}
