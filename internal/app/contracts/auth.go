package contracts

import (
	"context"
	"registrar-service/internal/pkg/dto/requests"
	"registrar-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	LoginUser(ctx context.Context, request *requests.Login) (*responses.Login, error)
	LogoutUser(ctx context.Context, sessionData string) error
}
