package controllers

import (
	"net/http"
	"registrar-service/internal/app/contracts"
	"registrar-service/internal/pkg/constvars"
	"registrar-service/internal/pkg/dto/requests"
	"registrar-service/internal/pkg/exceptions"
	"registrar-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type UserController struct {
	Usecase contracts.UserUsecase
	Log     *zap.Logger
}

func NewUserController(usecase contracts.UserUsecase, log *zap.Logger) *UserController {
	return &UserController{
		Usecase: usecase,
		Log:     log,
	}
}

func (c *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateUser)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.Usecase.CreateUser(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UserCreatedSuccess, response)
}

// GetProfile returns the user bound to the caller's own session.
func (c *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	response, err := c.Usecase.GetUserBySession(r.Context(), sessionData)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UserGetSuccess, response)
}

func (c *UserController) GetUserByID(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	response, err := c.Usecase.GetUserByID(r.Context(), userID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UserGetSuccess, response)
}

func (c *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	skip, limit := utils.BuildSkipLimit(r)

	response, err := c.Usecase.ListUsers(r.Context(), skip, limit)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UserListSuccess, response)
}

func (c *UserController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	request := new(requests.UpdateUser)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.Usecase.UpdateUser(r.Context(), userID, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UserUpdatedSuccess, response)
}

func (c *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	err := c.Usecase.DeleteUser(r.Context(), userID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildNoContentResponse(w)
}
