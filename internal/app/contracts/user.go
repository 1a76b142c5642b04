package contracts

import (
	"context"
	"registrar-service/internal/app/models"
	"registrar-service/internal/pkg/dto/requests"
	"registrar-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.User, error)
	GetUserBySession(ctx context.Context, sessionData string) (*responses.User, error)
	GetUserByID(ctx context.Context, userID string) (*responses.User, error)
	ListUsers(ctx context.Context, skip, limit int) ([]*responses.User, error)
	UpdateUser(ctx context.Context, userID string, request *requests.UpdateUser) (*responses.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

type UserRepository interface {
	Insert(ctx context.Context, user *models.User) (userID string, err error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByCampusID(ctx context.Context, campusID string) (*models.User, error)
	List(ctx context.Context, skip, limit int) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	DeleteByID(ctx context.Context, userID string) error
}
