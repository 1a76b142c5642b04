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

type ScheduleController struct {
	Usecase contracts.ScheduleUsecase
	Log     *zap.Logger
}

func NewScheduleController(usecase contracts.ScheduleUsecase, log *zap.Logger) *ScheduleController {
	return &ScheduleController{
		Usecase: usecase,
		Log:     log,
	}
}

func (c *ScheduleController) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateSchedule)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.Usecase.CreateSchedule(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ScheduleCreatedSuccess, response)
}

func (c *ScheduleController) GetScheduleByID(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "scheduleID")

	response, err := c.Usecase.GetScheduleByID(r.Context(), scheduleID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleGetSuccess, response)
}

func (c *ScheduleController) ListSchedules(w http.ResponseWriter, r *http.Request) {
	request := utils.BuildListSchedulesRequest(r)

	response, err := c.Usecase.ListSchedules(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleListSuccess, response)
}

func (c *ScheduleController) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "scheduleID")

	request := new(requests.UpdateSchedule)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.Usecase.UpdateSchedule(r.Context(), scheduleID, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleUpdatedSuccess, response)
}

func (c *ScheduleController) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "scheduleID")

	err := c.Usecase.DeleteSchedule(r.Context(), scheduleID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildNoContentResponse(w)
}
