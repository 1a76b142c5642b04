package routers

import (
	"registrar-service/internal/app/delivery/http/controllers"
	"registrar-service/internal/app/delivery/http/middlewares"
	"registrar-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

// User administration is admin-only; /me serves the caller's own profile.
func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.With(middlewares.Authenticate).Get("/me", userController.GetProfile)

	adminOnly := middlewares.RequireRoles(constvars.RoleAdmin)

	router.With(middlewares.Authenticate, adminOnly).Post("/", userController.CreateUser)
	router.With(middlewares.Authenticate, adminOnly).Get("/", userController.ListUsers)
	router.With(middlewares.Authenticate, adminOnly).Get("/{userID}", userController.GetUserByID)
	router.With(middlewares.Authenticate, adminOnly).Patch("/{userID}", userController.UpdateUser)
	router.With(middlewares.Authenticate, adminOnly).Delete("/{userID}", userController.DeleteUser)
}
