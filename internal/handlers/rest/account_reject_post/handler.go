package account_reject_post

import (
	"errors"
	"net/http"

	"freightforge/internal/pkg/respond"
	"freightforge/internal/service/account"
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
	username := mux.Vars(r)["id"]

	err := h.service.Reject(r.Context(), username)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrAccountNotFound):
			respond.Error(w, http.StatusNotFound, err.Error())
		default:
			h.log.Error("reject account",
				logger.NewField("username", username),
				logger.NewField("error", err),
			)
			respond.Error(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
