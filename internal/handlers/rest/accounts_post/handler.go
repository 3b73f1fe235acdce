package accounts_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"freightforge/internal/entities"
	"freightforge/internal/generated/dto"
	"freightforge/internal/pkg/respond"
	"freightforge/internal/service/account"
	"freightforge/pkg/logger"
)

// maxBodyBytes bounds the request including the base64 identity document.
const maxBodyBytes = 8 << 20

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
	var accountCreateDTO dto.AccountCreate
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&accountCreateDTO)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	ticket, err := h.service.Start(r.Context(), toModify(accountCreateDTO))
	if err != nil {
		switch {
		case errors.Is(err, account.ErrMissingRequiredFields),
			errors.Is(err, account.ErrInvalidUsername),
			errors.Is(err, account.ErrInvalidPassword),
			errors.Is(err, account.ErrInvalidEmail),
			errors.Is(err, account.ErrInvalidMobile),
			errors.Is(err, account.ErrInvalidBusinessType):
			respond.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, account.ErrDuplicateUsername):
			respond.Error(w, http.StatusConflict, err.Error())
		default:
			h.log.Error("start registration", logger.NewField("error", err))
			respond.Error(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	response := dto.VerificationTicket{
		ChallengeId: ticket.ChallengeID,
		Contact:     ticket.Contact,
		ExpiresAt:   ticket.ExpiresAt,
	}
	if ticket.DemoCode != "" {
		response.DemoCode = &ticket.DemoCode
	}

	if err := respond.JSON(w, http.StatusAccepted, response); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}

func toModify(in dto.AccountCreate) entities.AccountModify {
	modify := entities.AccountModify{
		Username:      in.Username,
		Password:      in.Password,
		BusinessName:  in.BusinessName,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Mobile:        in.Mobile,
		TaxID:         in.TaxId,
		Address:       in.Address,
	}
	if in.BusinessType != nil {
		businessType := entities.BusinessType(*in.BusinessType)
		modify.BusinessType = &businessType
	}
	if in.IdentityDocument != nil {
		modify.IdentityDocument = *in.IdentityDocument
	}
	return modify
}
