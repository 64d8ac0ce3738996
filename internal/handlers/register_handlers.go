package handlers

import (
	"fmt"
	"slices"
	"sync"

	"github.com/SscSPs/currency_exchange_app/cmd/docs"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/middleware"
	"github.com/SscSPs/currency_exchange_app/internal/platform/config"
	"github.com/SscSPs/currency_exchange_app/internal/platform/metrics"
	"github.com/SscSPs/currency_exchange_app/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

// registerValidators installs the custom binding rules once per process.
func registerValidators() error {
	validatorsOnce.Do(func() {
		validatorsErr = dto.RegisterGinValidators()
	})
	return validatorsErr
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics utils.AnalyticsEnqueuer,
) error {
	if err := registerValidators(); err != nil {
		return err
	}

	r.Use(cors.New(corsConfig(cfg)), middleware.MetricsMiddleware())

	r.GET("/", getHome)
	r.GET("/health", healthCheck)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if err := setupAPIV1Routes(r, cfg, services, analytics); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 0 || slices.Contains(cfg.CORSAllowedOrigins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}
	c.AddAllowHeaders("Authorization", middleware.RequestIDHeader)
	c.AddExposeHeaders(middleware.RequestIDHeader)
	return c
}

// setupAPIV1Routes configures the /api/v1 group. Admin routes share the
// paths of public ones and are told apart by method.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics utils.AnalyticsEnqueuer,
) error {
	loginLimiter, err := middleware.NewRateLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("login rate limit: %w", err)
	}
	commentLimiter, err := middleware.NewRateLimiter(cfg.CommentRateLimit)
	if err != nil {
		return fmt.Errorf("comment rate limit: %w", err)
	}

	authH := newAuthHandler(services.Auth)
	countryH := newCountryHandler(services.Country)
	commentH := newCommentHandler(services.Comment, analytics)
	conversionH := newConversionHandler(services.Conversion)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/admin/login", middleware.RateLimit(loginLimiter), authH.login)
		v1.GET("/countries", countryH.listCountries)
		v1.GET("/comments", commentH.listVisibleComments)
		v1.POST("/comments", middleware.RateLimit(commentLimiter), commentH.createComment)
		v1.GET("/convert", conversionH.convert)
	}

	admin := v1.Group("", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer), middleware.PosthogMiddleware(analytics))
	{
		admin.GET("/admin/me", authH.me)
		admin.GET("/admin/comments", commentH.listAllComments)

		admin.POST("/countries", countryH.createCountry)
		admin.PUT("/countries", countryH.updateCountries)
		admin.PUT("/countries/:id/enable", countryH.enableCountry)
		admin.PUT("/countries/:id/disable", countryH.disableCountry)
		admin.DELETE("/countries/:id", countryH.deleteCountry)

		admin.PUT("/comments-visibility", commentH.updateVisibility)
		admin.DELETE("/comments", commentH.deleteComments)
	}
	return nil
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
