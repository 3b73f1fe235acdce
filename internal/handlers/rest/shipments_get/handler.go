package shipments_get

import (
	"net/http"

	"freightforge/internal/handlers/rest/presenter"
	"freightforge/internal/pkg/middlewares/auth"
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
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	waybills, err := h.service.ListByAccount(r.Context(), principal.Username)
	if err != nil {
		h.log.Error("list waybills",
			logger.NewField("username", principal.Username),
			logger.NewField("error", err),
		)
		respond.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := respond.JSON(w, http.StatusOK, presenter.Waybills(waybills)); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}
