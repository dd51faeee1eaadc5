package routes

import (
	"github.com/gin-gonic/gin"

	directoryhandlers "campusmind/internal/interfaces/http/handlers/directory"
	"campusmind/internal/interfaces/http/middleware"
)

type DirectoryRouteConfig struct {
	DirectoryHandler     *directoryhandlers.DirectoryHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupDirectoryRoutes(engine *gin.Engine, config *DirectoryRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.GET("",
			config.PermissionMiddleware.RequirePermission("users", "read"),
			config.DirectoryHandler.ListUsers)
		users.GET("/:id",
			config.DirectoryHandler.GetUser)
	}

	departments := engine.Group("/departments")
	departments.Use(config.AuthMiddleware.RequireAuth())
	{
		departments.GET("/:id", config.DirectoryHandler.GetDepartment)
	}

	sections := engine.Group("/sections")
	sections.Use(config.AuthMiddleware.RequireAuth())
	{
		sections.GET("/:id", config.DirectoryHandler.GetSection)
	}
}
