package sessions_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"freightforge/internal/generated/dto"
	"freightforge/internal/handlers/rest/presenter"
	"freightforge/internal/pkg/respond"
	"freightforge/internal/service/account"
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
	var credentials dto.SessionCreate
	err := json.NewDecoder(r.Body).Decode(&credentials)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	session, err := h.service.Open(r.Context(), credentials.Username, credentials.Password)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidCredentials):
			respond.Error(w, http.StatusUnauthorized, account.ErrInvalidCredentials.Error())
		default:
			h.log.Error("open session", logger.NewField("error", err))
			respond.Error(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	response := dto.Session{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Account:   presenter.Account(session.Account),
	}
	if err := respond.JSON(w, http.StatusCreated, response); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}
