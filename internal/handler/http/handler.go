package http

import (
	"github.com/mlevashov/taskdesk/internal/logger"
	"github.com/mlevashov/taskdesk/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
