package controllers

import (
	"net/http"
	"registrar-service/internal/app/contracts"
	"registrar-service/internal/pkg/constvars"
	"registrar-service/internal/pkg/dto/requests"
	"registrar-service/internal/pkg/exceptions"
	"registrar-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Usecase contracts.AuthUsecase
	Log     *zap.Logger
}

func NewAuthController(usecase contracts.AuthUsecase, log *zap.Logger) *AuthController {
	return &AuthController{
		Usecase: usecase,
		Log:     log,
	}
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Login)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.Usecase.LoginUser(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, response)
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	err := c.Usecase.LogoutUser(r.Context(), sessionData)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}
