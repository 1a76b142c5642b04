package middlewares

import (
	"registrar-service/internal/app/config"
	"registrar-service/internal/app/contracts"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Middlewares struct {
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	RequestLog     *logrus.Logger
}

func NewMiddlewares(
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	requestLogger *logrus.Logger,
) *Middlewares {
	return &Middlewares{
		SessionService: sessionService,
		InternalConfig: internalConfig,
		Log:            logger,
		RequestLog:     requestLogger,
	}
}
