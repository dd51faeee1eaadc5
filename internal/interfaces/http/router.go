package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	directoryusecases "campusmind/internal/application/directory/usecases"
	issueusecases "campusmind/internal/application/issue/usecases"
	"campusmind/internal/domain/issue"
	"campusmind/internal/infrastructure/auth"
	"campusmind/internal/infrastructure/classifier"
	"campusmind/internal/infrastructure/config"
	"campusmind/internal/infrastructure/email"
	"campusmind/internal/infrastructure/permission"
	"campusmind/internal/infrastructure/ratelimit"
	"campusmind/internal/infrastructure/repository"
	"campusmind/internal/interfaces/http/handlers"
	adminhandlers "campusmind/internal/interfaces/http/handlers/admin"
	directoryhandlers "campusmind/internal/interfaces/http/handlers/directory"
	issuehandlers "campusmind/internal/interfaces/http/handlers/issue"
	"campusmind/internal/interfaces/http/middleware"
	"campusmind/internal/interfaces/http/routes"
	"campusmind/internal/shared/db"
	"campusmind/internal/shared/logger"
	"campusmind/internal/shared/services/markdown"
	"campusmind/internal/shared/utils"
)

// Router wires repositories, use cases and handlers onto a gin engine.
type Router struct {
	engine               *gin.Engine
	authHandler          *handlers.AuthHandler
	issueHandler         *issuehandlers.IssueHandler
	directoryHandler     *directoryhandlers.DirectoryHandler
	adminHandler         *adminhandlers.AdminHandler
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimitMiddleware
	allowedOrigins       []string
	log                  logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	issueRepo := repository.NewIssueRepository(database)
	userRepo := repository.NewUserRepository(database)
	departmentRepo := repository.NewDepartmentRepository(database)
	sectionRepo := repository.NewSectionRepository(database)

	txMgr := db.NewTransactionManager(database)

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	var textClassifier issue.Classifier
	if cfg.Classifier.Endpoint != "" {
		timeout := time.Duration(cfg.Classifier.TimeoutSeconds) * time.Second
		textClassifier = classifier.NewHTTPClassifier(cfg.Classifier.Endpoint, timeout, log)
	} else {
		textClassifier = classifier.NewStaticClassifier()
	}

	var notifier issueusecases.EscalationNotifier
	if cfg.Email.Enabled {
		sender := email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
		})
		notifier = email.NewEscalationNotifier(sender, markdown.NewMarkdownService(), log)
	} else {
		notifier = email.NewNoopNotifier()
	}

	enforcer, err := permission.NewEnforcer(database, cfg.Permission.ModelPath, log)
	if err != nil {
		return nil, err
	}
	if err := permission.InitDefaultPolicies(enforcer); err != nil {
		return nil, err
	}

	var limiter ratelimit.RateLimiter
	if redisClient != nil {
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	} else {
		limiter = ratelimit.NewNoopRateLimiter()
	}

	loginUC := directoryusecases.NewLoginWithPasswordUseCase(userRepo, jwtSvc, log)
	getUserUC := directoryusecases.NewGetUserUseCase(userRepo, log)
	listUsersUC := directoryusecases.NewListUsersUseCase(userRepo, log)
	getDepartmentUC := directoryusecases.NewGetDepartmentUseCase(departmentRepo, sectionRepo, log)
	getSectionUC := directoryusecases.NewGetSectionUseCase(sectionRepo, log)

	createIssueUC := issueusecases.NewCreateIssueUseCase(issueRepo, userRepo, textClassifier, log)
	getIssueUC := issueusecases.NewGetIssueUseCase(issueRepo, log)
	listIssuesUC := issueusecases.NewListIssuesUseCase(issueRepo, log)
	listForUserUC := issueusecases.NewListIssuesForUserUseCase(issueRepo, userRepo, log)
	searchIssuesUC := issueusecases.NewSearchIssuesUseCase(issueRepo, log)
	forwardIssueUC := issueusecases.NewForwardIssueUseCase(issueRepo, userRepo, txMgr, notifier, log)
	verifyIssueUC := issueusecases.NewVerifyIssueUseCase(issueRepo, userRepo, txMgr, notifier, log)
	assignIssueUC := issueusecases.NewAssignIssueUseCase(issueRepo, userRepo, txMgr, notifier, log)
	reclassifyIssueUC := issueusecases.NewReclassifyIssueUseCase(issueRepo, textClassifier, txMgr, log)
	getAdminStatsUC := issueusecases.NewGetAdminStatsUseCase(issueRepo, departmentRepo, log)

	authHandler := handlers.NewAuthHandler(loginUC, getUserUC, log)
	issueHandler := issuehandlers.NewIssueHandler(
		createIssueUC, getIssueUC, listForUserUC, listIssuesUC, searchIssuesUC,
		forwardIssueUC, verifyIssueUC, assignIssueUC, reclassifyIssueUC,
	)
	directoryHandler := directoryhandlers.NewDirectoryHandler(getUserUC, listUsersUC, getDepartmentUC, getSectionUC)
	adminHandler := adminhandlers.NewAdminHandler(getAdminStatsUC, listIssuesUC)

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, log)
	permissionMiddleware := middleware.NewPermissionMiddleware(enforcer, log)
	rateLimiter := middleware.NewRateLimitMiddleware(limiter, ratelimit.RateLimitConfig{
		RequestsPerMinute: 10,
		RequestsPerHour:   100,
	})

	return &Router{
		engine:               engine,
		authHandler:          authHandler,
		issueHandler:         issueHandler,
		directoryHandler:     directoryHandler,
		adminHandler:         adminHandler,
		authMiddleware:       authMiddleware,
		permissionMiddleware: permissionMiddleware,
		rateLimiter:          rateLimiter,
		allowedOrigins:       cfg.Server.AllowedOrigins,
		log:                  log,
	}, nil
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, "ok", gin.H{"status": "healthy"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupIssueRoutes(r.engine, &routes.IssueRouteConfig{
		IssueHandler:         r.issueHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupDirectoryRoutes(r.engine, &routes.DirectoryRouteConfig{
		DirectoryHandler:     r.directoryHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AdminHandler:         r.adminHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
