package routes

import (
	_ "pdrims-http-service/docs"
	"pdrims-http-service/internal/app/controllers"
	"pdrims-http-service/internal/app/middleware"
	"pdrims-http-service/internal/domain/models"
	"pdrims-http-service/internal/domain/services/container"
	"pdrims-http-service/internal/infrastructure/config"
	"pdrims-http-service/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter builds the gin engine with every route registered
func SetupRouter(serviceContainer *container.ServiceContainer, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORSOrigin))

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer, cfg)
	return r
}

// registerRoutes configures every API route
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
	cfg *config.Config,
) {
	api := r.Group("/api")
	api.Use(middleware.IPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))

	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers routes that need no token
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	health := controllers.NewHealthCheckController(container)
	api.GET("/health", health.Ping)

	api.POST("/login", controllers.HandleJWTFunc(container, "login"))
}

// registerAuthenticatedRoutes registers routes behind the bearer token and
// the capability table
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("")
	auth.Use(middleware.Authentication(container))

	can := middleware.RequireCapability

	auth.POST("/logout", controllers.HandleJWTFunc(container, "logout"))

	// Households
	householdGroup := auth.Group("/households")
	householdGroup.GET("", can(models.CapHouseholdsRead), controllers.HandleHouseholdFunc(container, "getHouseholds"))
	householdGroup.GET("/:id", can(models.CapHouseholdsRead), controllers.HandleHouseholdFunc(container, "getHousehold"))
	householdGroup.POST("", can(models.CapHouseholdsWrite), controllers.HandleHouseholdFunc(container, "createHousehold"))
	householdGroup.PUT("/:id", can(models.CapHouseholdsWrite), controllers.HandleHouseholdFunc(container, "updateHousehold"))

	// Aid records
	aidGroup := auth.Group("/aid-records")
	aidGroup.GET("", can(models.CapAidRead), controllers.HandleAidRecordFunc(container, "getAidRecords"))
	aidGroup.POST("", can(models.CapAidWrite), controllers.HandleAidRecordFunc(container, "createAidRecord"))
	aidGroup.PUT("/:id", can(models.CapAidWrite), controllers.HandleAidRecordFunc(container, "updateAidRecord"))

	// Audit log and inbox
	auth.GET("/logs", can(models.CapLogsRead), controllers.HandleLogFunc(container, "getLogs"))
	auth.GET("/inbox", can(models.CapInboxRead), controllers.HandleLogFunc(container, "getInbox"))

	// Users
	userGroup := auth.Group("/users")
	userGroup.Use(can(models.CapUsersManage))
	userGroup.GET("", controllers.HandleUserFunc(container, "getUsers"))
	userGroup.POST("", controllers.HandleUserFunc(container, "createUser"))
	userGroup.POST("/approve/:id", controllers.HandleUserFunc(container, "approveUser"))
	userGroup.DELETE("/:id", controllers.HandleUserFunc(container, "deleteUser"))
}
