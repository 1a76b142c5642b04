package contracts

import (
	"context"
	"registrar-service/internal/app/models"
)

type SessionService interface {
	GetSessionData(ctx context.Context, sessionID string) (string, error)
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
}
