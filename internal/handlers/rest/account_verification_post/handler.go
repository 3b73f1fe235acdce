package account_verification_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"freightforge/internal/generated/dto"
	"freightforge/internal/handlers/rest/presenter"
	"freightforge/internal/pkg/respond"
	"freightforge/internal/service/account"
	"freightforge/internal/service/registration"
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
	var confirmDTO dto.VerificationConfirm
	err := json.NewDecoder(r.Body).Decode(&confirmDTO)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	pending, err := h.service.Confirm(r.Context(), confirmDTO.ChallengeId, confirmDTO.Code)
	if err != nil {
		switch {
		case errors.Is(err, registration.ErrMissingCode):
			respond.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, registration.ErrChallengeNotFound):
			respond.Error(w, http.StatusNotFound, err.Error())
		case errors.Is(err, registration.ErrInvalidCode):
			respond.Error(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, registration.ErrTooManyAttempts):
			respond.Error(w, http.StatusTooManyRequests, err.Error())
		case errors.Is(err, account.ErrDuplicateUsername):
			respond.Error(w, http.StatusConflict, err.Error())
		default:
			h.log.Error("confirm registration", logger.NewField("error", err))
			respond.Error(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	if err := respond.JSON(w, http.StatusCreated, presenter.Account(*pending)); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}
