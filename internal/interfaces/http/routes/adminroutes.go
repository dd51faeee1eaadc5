package routes

import (
	"github.com/gin-gonic/gin"

	adminhandlers "campusmind/internal/interfaces/http/handlers/admin"
	"campusmind/internal/interfaces/http/middleware"
)

type AdminRouteConfig struct {
	AdminHandler         *adminhandlers.AdminHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(config.AuthMiddleware.RequireAuth())
	admin.Use(config.PermissionMiddleware.RequirePermission("admin", "read"))
	{
		admin.GET("/stats", config.AdminHandler.GetStats)
		admin.GET("/issues", config.AdminHandler.ListIssues)
	}
}
