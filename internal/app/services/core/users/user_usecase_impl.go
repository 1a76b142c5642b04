package users

import (
	"context"
	"registrar-service/internal/app/contracts"
	"registrar-service/internal/app/models"
	"registrar-service/internal/pkg/constvars"
	"registrar-service/internal/pkg/dto/requests"
	"registrar-service/internal/pkg/dto/responses"
	"registrar-service/internal/pkg/exceptions"
	"registrar-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	Log            *zap.Logger
}

func NewUserUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		Log:            logger,
	}
}

func (uc *userUsecase) CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.User, error) {
	existing, err := uc.UserRepository.FindByCampusID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrUserIDAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		UserID:     request.UserID,
		Firstname:  request.Firstname,
		Lastname:   request.Lastname,
		Middlename: request.Middlename,
		Password:   hashedPassword,
		Role:       request.Role,
		Department: request.Department,
		IsActive:   true,
	}

	userID, err := uc.UserRepository.Insert(ctx, user)
	if err != nil {
		uc.Log.Error("userUsecase.CreateUser error inserting user",
			zap.String(constvars.LoggingUserIDKey, request.UserID),
			zap.Error(err),
		)
		return nil, err
	}
	user.ID = userID

	return user.ConvertToResponse(), nil
}

func (uc *userUsecase) GetUserBySession(ctx context.Context, sessionData string) (*responses.User, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return user.ConvertToResponse(), nil
}

func (uc *userUsecase) GetUserByID(ctx context.Context, userID string) (*responses.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return user.ConvertToResponse(), nil
}

func (uc *userUsecase) ListUsers(ctx context.Context, skip, limit int) ([]*responses.User, error) {
	users, err := uc.UserRepository.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	result := make([]*responses.User, 0, len(users))
	for _, user := range users {
		result = append(result, user.ConvertToResponse())
	}
	return result, nil
}

func (uc *userUsecase) UpdateUser(ctx context.Context, userID string, request *requests.UpdateUser) (*responses.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	if request.Firstname != nil {
		user.Firstname = *request.Firstname
	}
	if request.Lastname != nil {
		user.Lastname = *request.Lastname
	}
	if request.Middlename != nil {
		user.Middlename = *request.Middlename
	}
	if request.Password != nil {
		hashedPassword, err := utils.HashPassword(*request.Password)
		if err != nil {
			return nil, exceptions.ErrHashPassword(err)
		}
		user.Password = hashedPassword
	}
	if request.Role != nil {
		user.Role = *request.Role
	}
	if request.Department != nil {
		user.Department = *request.Department
	}
	if request.IsActive != nil {
		user.IsActive = *request.IsActive
	}

	err = uc.UserRepository.Update(ctx, user)
	if err != nil {
		uc.Log.Error("userUsecase.UpdateUser error updating user",
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return nil, err
	}
	return user.ConvertToResponse(), nil
}

func (uc *userUsecase) DeleteUser(ctx context.Context, userID string) error {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(nil)
	}
	return uc.UserRepository.DeleteByID(ctx, user.ID)
}
