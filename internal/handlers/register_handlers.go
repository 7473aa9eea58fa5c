package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"github.com/SscSPs/earnings_calendar_app/cmd/docs"
	"github.com/SscSPs/earnings_calendar_app/internal/calendar"
	portssvc "github.com/SscSPs/earnings_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/earnings_calendar_app/internal/dto"
	"github.com/SscSPs/earnings_calendar_app/internal/metrics"
	"github.com/SscSPs/earnings_calendar_app/internal/middleware"
	"github.com/SscSPs/earnings_calendar_app/internal/platform/config"
	"github.com/SscSPs/earnings_calendar_app/internal/utils"
)

type routeOptions struct {
	limiter *limiter.Limiter
	posthog *utils.PosthogClientWrapper
	now     func() time.Time
	loc     *time.Location
}

// RouteOption customizes RegisterRoutes.
type RouteOption func(*routeOptions)

// WithRateLimiter limits the routes that can trigger provider lookups.
func WithRateLimiter(l *limiter.Limiter) RouteOption {
	return func(o *routeOptions) { o.limiter = l }
}

// WithPosthog sends custom analytics events from handlers.
func WithPosthog(p *utils.PosthogClientWrapper) RouteOption {
	return func(o *routeOptions) { o.posthog = p }
}

// WithClock overrides the clock and time zone used for "today" and month navigation.
func WithClock(now func() time.Time, loc *time.Location) RouteOption {
	return func(o *routeOptions) {
		o.now = now
		o.loc = loc
	}
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	opts ...RouteOption,
) error {
	o := &routeOptions{now: time.Now, loc: time.Local}
	for _, opt := range opts {
		opt(o)
	}

	if err := dto.RegisterValidators(); err != nil {
		return err
	}

	r.SetHTMLTemplate(calendar.Templates())
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	limit := middleware.RateLimit(o.limiter)

	// Calendar pages
	registerCalendarRoutes(r, &calendarHandler{
		store:    services.EventStore,
		flow:     services.AddEvent,
		renderer: calendar.NewRenderer(cfg.LogoBaseURL),
		now:      o.now,
		loc:      o.loc,
		posthog:  o.posthog,
	}, limit)

	// JSON API, served both at the root and under /api
	setupAPIRoutes(&r.RouterGroup, cfg, services, o, limit)
	setupAPIRoutes(r.Group("/api"), cfg, services, o, limit)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIRoutes delegates route registration to specific handlers, passing required services
func setupAPIRoutes(
	rg *gin.RouterGroup,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	o *routeOptions,
	limit gin.HandlerFunc,
) {
	storeGuard := middleware.RequireConfig(cfg.StoreConfigError)
	lookupGuard := middleware.RequireConfig(cfg.LookupConfigError)

	registerHealthRoutes(rg, services.Health, o.now)
	registerEventRoutes(rg, newEventsHandler(services.EventStore, services.Lookup, cfg.LookupConfigError, o.posthog), storeGuard, limit)
	registerEarningsRoutes(rg, services.Lookup, lookupGuard, limit)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
