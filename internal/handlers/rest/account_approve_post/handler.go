package account_approve_post

import (
	"errors"
	"net/http"

	"freightforge/internal/handlers/rest/presenter"
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

	approved, err := h.service.Approve(r.Context(), username)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrAccountNotFound):
			respond.Error(w, http.StatusNotFound, err.Error())
		default:
			h.log.Error("approve account",
				logger.NewField("username", username),
				logger.NewField("error", err),
			)
			respond.Error(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	if err := respond.JSON(w, http.StatusOK, presenter.Account(*approved)); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}
