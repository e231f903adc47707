package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/SscSPs/forex_marketplace/cmd/docs"
	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
	"github.com/SscSPs/forex_marketplace/internal/dto"
	"github.com/SscSPs/forex_marketplace/internal/middleware"
	"github.com/SscSPs/forex_marketplace/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// DefaultHeartbeatInterval keeps idle rate streams open through proxies.
const DefaultHeartbeatInterval = 15 * time.Second

// RouteOptions carries the optional infrastructure the routes are wired with.
type RouteOptions struct {
	RateStream        RateSubscriber
	Limiter           *limiter.Limiter // nil disables rate limiting
	HeartbeatInterval time.Duration
}

var registerValidatorsOnce sync.Once

// RegisterBindingValidators installs the custom validation rules on gin's validator.
// It is safe to call more than once.
func RegisterBindingValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			if err := dto.RegisterValidators(v); err != nil {
				panic("failed to register binding validators: " + err.Error())
			}
		}
	})
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	opts RouteOptions,
) {
	RegisterBindingValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/", getHome)

	setupAPIV1Routes(r, cfg, services, opts)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	opts RouteOptions,
) {
	// Identity is attached when present so the limiter can key on it
	v1 := r.Group("/api/v1", middleware.OptionalAuth(cfg.JWTSecret, cfg.JWTIssuer))
	if opts.Limiter != nil {
		v1.Use(middleware.RateLimit(opts.Limiter))
	}

	authenticated := v1.Group("", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	admin := authenticated.Group("/admin", middleware.AdminOnly())

	heartbeat := opts.HeartbeatInterval
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeatInterval
	}

	registerRateRoutes(v1, service.Rate, service.Quote, opts.RateStream, heartbeat)
	registerRateAlertRoutes(authenticated, service.RateAlert)
	registerOfferRoutes(v1, authenticated, service.Offer)
	registerOrderRoutes(authenticated, service.Order)
	registerPaymentRoutes(authenticated, service.Payment)
	registerAdminRoutes(admin, service.Rate, service.Order)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
