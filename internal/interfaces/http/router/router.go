package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/staffdir/backend/internal/domain/identity"
	"github.com/staffdir/backend/internal/infrastructure/auth"
	"github.com/staffdir/backend/internal/infrastructure/config"
	"github.com/staffdir/backend/internal/interfaces/http/handler"
	"github.com/staffdir/backend/internal/interfaces/http/middleware"
)

// Handlers bundles every handler the router wires up
type Handlers struct {
	System   *handler.SystemHandler
	Auth     *handler.AuthHandler
	Employee *handler.EmployeeHandler
	Import   *handler.EmployeeImportHandler
	Dept     *handler.DepartmentHandler
	Position *handler.PositionHandler
	Area     *handler.AreaHandler
}

// Dependencies carries everything New needs beyond the handlers
type Dependencies struct {
	Config     *config.Config
	Logger     *zap.Logger
	JWTService *auth.JWTService
	Blacklist  auth.TokenBlacklist
	Handlers   Handlers
}

// New builds the gin engine with all middleware and routes
func New(deps Dependencies) *gin.Engine {
	if deps.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if len(deps.Config.HTTP.TrustedProxies) > 0 {
		_ = r.SetTrustedProxies(deps.Config.HTTP.TrustedProxies)
	}

	corsConfig := middleware.DefaultCORSConfig()
	if len(deps.Config.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = deps.Config.HTTP.CORSAllowOrigins
	}
	if len(deps.Config.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = deps.Config.HTTP.CORSAllowMethods
	}
	if len(deps.Config.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = deps.Config.HTTP.CORSAllowHeaders
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(deps.Logger))
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.CORSWithConfig(corsConfig))
	r.Use(middleware.BodyLimit(deps.Config.HTTP.MaxBodySize))

	deps.Handlers.System.RegisterRoutes(r)

	jwtConfig := middleware.DefaultJWTConfig(deps.JWTService)
	jwtConfig.TokenBlacklist = deps.Blacklist
	jwtConfig.Logger = deps.Logger

	api := r.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", deps.Handlers.Auth.Login)
		authGroup.POST("/logout", deps.Handlers.Auth.Logout)
		authGroup.GET("/me", deps.Handlers.Auth.Me)
		authGroup.POST("/password", deps.Handlers.Auth.ChangePassword)
	}

	users := api.Group("/users")
	users.Use(middleware.RequirePermission(identity.PermUserManage))
	{
		users.GET("", deps.Handlers.Auth.ListUsers)
		users.POST("", deps.Handlers.Auth.CreateUser)
		users.PUT("/:id", deps.Handlers.Auth.UpdateUser)
		users.DELETE("/:id", deps.Handlers.Auth.DeleteUser)
	}

	employees := api.Group("/employees")
	{
		employees.GET("", middleware.RequirePermission(identity.PermEmployeeRead), deps.Handlers.Employee.List)
		employees.GET("/:id", middleware.RequirePermission(identity.PermEmployeeRead), deps.Handlers.Employee.Get)
		employees.POST("", middleware.RequirePermission(identity.PermEmployeeWrite), deps.Handlers.Employee.Create)
		employees.PUT("/:id", middleware.RequirePermission(identity.PermEmployeeWrite), deps.Handlers.Employee.Update)
		employees.DELETE("/:id", middleware.RequirePermission(identity.PermEmployeeWrite), deps.Handlers.Employee.Delete)

		// The upload route carries its own tighter body limit
		employees.POST("/import",
			middleware.RequirePermission(identity.PermEmployeeImport),
			middleware.BodyLimit(deps.Config.Import.MaxFileSize),
			deps.Handlers.Import.Import)
		employees.GET("/import/template",
			middleware.RequirePermission(identity.PermEmployeeImport),
			deps.Handlers.Import.Template)
		employees.GET("/export",
			middleware.RequirePermission(identity.PermEmployeeExport),
			deps.Handlers.Import.Export)
	}

	departments := api.Group("/departments")
	{
		departments.GET("", middleware.RequirePermission(identity.PermEmployeeRead), deps.Handlers.Dept.List)
		departments.GET("/:id", middleware.RequirePermission(identity.PermEmployeeRead), deps.Handlers.Dept.Get)
		departments.POST("", middleware.RequirePermission(identity.PermDirectoryWrite), deps.Handlers.Dept.Create)
		departments.PUT("/:id", middleware.RequirePermission(identity.PermDirectoryWrite), deps.Handlers.Dept.Update)
		departments.DELETE("/:id", middleware.RequirePermission(identity.PermDirectoryWrite), deps.Handlers.Dept.Delete)
	}

	positions := api.Group("/positions")
	{
		positions.GET("", middleware.RequirePermission(identity.PermEmployeeRead), deps.Handlers.Position.List)
		positions.GET("/:id", middleware.RequirePermission(identity.PermEmployeeRead), deps.Handlers.Position.Get)
		positions.POST("", middleware.RequirePermission(identity.PermDirectoryWrite), deps.Handlers.Position.Create)
		positions.PUT("/:id", middleware.RequirePermission(identity.PermDirectoryWrite), deps.Handlers.Position.Update)
		positions.DELETE("/:id", middleware.RequirePermission(identity.PermDirectoryWrite), deps.Handlers.Position.Delete)
	}

	areas := api.Group("/areas")
	{
		areas.GET("", middleware.RequirePermission(identity.PermEmployeeRead), deps.Handlers.Area.List)
		areas.GET("/:id", middleware.RequirePermission(identity.PermEmployeeRead), deps.Handlers.Area.Get)
		areas.POST("", middleware.RequirePermission(identity.PermDirectoryWrite), deps.Handlers.Area.Create)
		areas.PUT("/:id", middleware.RequirePermission(identity.PermDirectoryWrite), deps.Handlers.Area.Update)
		areas.DELETE("/:id", middleware.RequirePermission(identity.PermDirectoryWrite), deps.Handlers.Area.Delete)
	}

	return r
}
