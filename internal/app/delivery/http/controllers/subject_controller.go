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

type SubjectController struct {
	Usecase contracts.SubjectUsecase
	Log     *zap.Logger
}

func NewSubjectController(usecase contracts.SubjectUsecase, log *zap.Logger) *SubjectController {
	return &SubjectController{
		Usecase: usecase,
		Log:     log,
	}
}

func (c *SubjectController) CreateSubject(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateSubject)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.Usecase.CreateSubject(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubjectCreatedSuccess, response)
}

func (c *SubjectController) GetSubjectByCode(w http.ResponseWriter, r *http.Request) {
	subjectCode := chi.URLParam(r, "subjectCode")

	response, err := c.Usecase.GetSubjectByCode(r.Context(), subjectCode)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubjectGetSuccess, response)
}

func (c *SubjectController) ListSubjects(w http.ResponseWriter, r *http.Request) {
	skip, limit := utils.BuildSkipLimit(r)

	response, err := c.Usecase.ListSubjects(r.Context(), skip, limit)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubjectListSuccess, response)
}

func (c *SubjectController) UpdateSubject(w http.ResponseWriter, r *http.Request) {
	subjectCode := chi.URLParam(r, "subjectCode")

	request := new(requests.UpdateSubject)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.Usecase.UpdateSubject(r.Context(), subjectCode, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubjectUpdatedSuccess, response)
}

func (c *SubjectController) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	subjectCode := chi.URLParam(r, "subjectCode")

	err := c.Usecase.DeleteSubject(r.Context(), subjectCode)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildNoContentResponse(w)
}
