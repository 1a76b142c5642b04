package auth

import (
	"context"
	"registrar-service/internal/app/config"
	"registrar-service/internal/app/contracts"
	"registrar-service/internal/app/models"
	"registrar-service/internal/pkg/constvars"
	"registrar-service/internal/pkg/dto/requests"
	"registrar-service/internal/pkg/dto/responses"
	"registrar-service/internal/pkg/exceptions"
	"registrar-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	SessionService  contracts.SessionService
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:  userRepository,
		RedisRepository: redisRepository,
		SessionService:  sessionService,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	user, err := uc.UserRepository.FindByCampusID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	// The same error covers both unknown user and wrong password so login
	// responses do not reveal which IDs exist.
	if user == nil {
		return nil, exceptions.ErrInvalidUserIDOrPassword(nil)
	}
	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUserIDOrPassword(nil)
	}
	if !user.IsActive {
		return nil, exceptions.ErrUserInactive(nil)
	}

	sessionID := uuid.New().String()
	session := models.Session{
		SessionID: sessionID,
		UserID:    user.ID,
		CampusID:  user.UserID,
		Role:      user.Role,
	}
	sessionTTL := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	err = uc.RedisRepository.Set(ctx, sessionID, session, sessionTTL)
	if err != nil {
		return nil, err
	}

	accessToken, err := utils.GenerateJWT(sessionID, uc.InternalConfig.JWT.Secret, sessionTTL)
	if err != nil {
		uc.Log.Error("authUsecase.LoginUser error generating token",
			zap.String(constvars.LoggingUserIDKey, request.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.Login{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, sessionData string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	return uc.RedisRepository.Delete(ctx, session.SessionID)
}
