package ping_get

import (
	"net/http"

	"freightforge/internal/generated/dto"
	"freightforge/internal/pkg/respond"
	"freightforge/pkg/logger"
)

const pong = "pong"

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := pong
	if err := respond.JSON(w, http.StatusOK, dto.PingResponse{Message: &message}); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}
