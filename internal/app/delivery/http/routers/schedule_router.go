package routers

import (
	"registrar-service/internal/app/delivery/http/controllers"
	"registrar-service/internal/app/delivery/http/middlewares"
	"registrar-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

// Schedule reads are open to any authenticated role; mutations are reserved
// for chairpersons and admins.
func attachScheduleRoutes(router chi.Router, middlewares *middlewares.Middlewares, scheduleController *controllers.ScheduleController) {
	canManage := middlewares.RequireRoles(constvars.RoleChairperson, constvars.RoleAdmin)

	router.With(middlewares.Authenticate).Get("/", scheduleController.ListSchedules)
	router.With(middlewares.Authenticate).Get("/{scheduleID}", scheduleController.GetScheduleByID)

	router.With(middlewares.Authenticate, canManage).Post("/", scheduleController.CreateSchedule)
	router.With(middlewares.Authenticate, canManage).Patch("/{scheduleID}", scheduleController.UpdateSchedule)
	router.With(middlewares.Authenticate, canManage).Delete("/{scheduleID}", scheduleController.DeleteSchedule)
}
