package routers

import (
	"registrar-service/internal/app/delivery/http/controllers"
	"registrar-service/internal/app/delivery/http/middlewares"
	"registrar-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachSubjectRoutes(router chi.Router, middlewares *middlewares.Middlewares, subjectController *controllers.SubjectController) {
	canManage := middlewares.RequireRoles(constvars.RoleChairperson, constvars.RoleAdmin)

	router.With(middlewares.Authenticate).Get("/", subjectController.ListSubjects)
	router.With(middlewares.Authenticate).Get("/{subjectCode}", subjectController.GetSubjectByCode)

	router.With(middlewares.Authenticate, canManage).Post("/", subjectController.CreateSubject)
	router.With(middlewares.Authenticate, canManage).Patch("/{subjectCode}", subjectController.UpdateSubject)
	router.With(middlewares.Authenticate, canManage).Delete("/{subjectCode}", subjectController.DeleteSubject)
}
