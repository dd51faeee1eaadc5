package routes

import (
	"github.com/gin-gonic/gin"

	issuehandlers "campusmind/internal/interfaces/http/handlers/issue"
	"campusmind/internal/interfaces/http/middleware"
)

type IssueRouteConfig struct {
	IssueHandler         *issuehandlers.IssueHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupIssueRoutes(engine *gin.Engine, config *IssueRouteConfig) {
	issues := engine.Group("/issues")
	issues.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		issues.POST("",
			config.PermissionMiddleware.RequirePermission("issues", "create"),
			config.IssueHandler.CreateIssue)
		issues.GET("",
			config.PermissionMiddleware.RequirePermission("issues", "search"),
			config.IssueHandler.ListIssues)

		issues.GET("/search",
			config.PermissionMiddleware.RequirePermission("issues", "search"),
			config.IssueHandler.SearchIssues)
		issues.GET("/for-user/:id",
			config.IssueHandler.ListIssuesForUser)

		issues.POST("/:id/forward",
			config.PermissionMiddleware.RequirePermission("issues", "forward"),
			config.IssueHandler.ForwardIssue)
		issues.POST("/:id/verify",
			config.PermissionMiddleware.RequirePermission("issues", "verify"),
			config.IssueHandler.VerifyIssue)
		issues.POST("/:id/classify",
			config.PermissionMiddleware.RequirePermission("issues", "classify"),
			config.IssueHandler.ReclassifyIssue)

		issues.GET("/:id",
			config.IssueHandler.GetIssue)
	}

	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.POST("/:id/assign-issue/:issueID",
			config.PermissionMiddleware.RequirePermission("issues", "assign"),
			config.IssueHandler.AssignIssue)
	}
}
