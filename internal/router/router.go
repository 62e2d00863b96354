package router

import (
	"net/http"
	"net/url"
	"os"
	"strings"

	docs "github.com/financeflow/backend/api"
	"github.com/financeflow/backend/internal/auth"
	"github.com/financeflow/backend/internal/controllers"
	"github.com/financeflow/backend/internal/controllers/healthz"
	"github.com/financeflow/backend/internal/controllers/root"
	"github.com/financeflow/backend/internal/controllers/version"
	"github.com/financeflow/backend/internal/httperror"
	"github.com/financeflow/backend/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var release = "0.0.0"

var errMethodNotAllowed = httperror.Error{Message: "This HTTP method is not allowed for the endpoint you called"}

// Config configures the engine with all middlewares and the routes
// outside of the API, i.e. metrics and health.
//
// The returned teardown function must be called when the engine is
// not used anymore.
func Config(url *url.URL) (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	teardown := func() {
		unregisterPrometheusMetrics()
	}

	err := registerPrometheusMetrics()
	if err != nil {
		return nil, teardown, err
	}

	httputil.RegisterValidation()

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, errMethodNotAllowed)
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Disposition"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", release).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "FinanceFlow"
	docs.SwaggerInfo.Version = release
	docs.SwaggerInfo.Description = "The backend for FinanceFlow, tracking income and expenses per category with monthly statements."

	healthz.RegisterRoutes(r.Group("/healthz"))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
func AttachRoutes(group *gin.RouterGroup) {
	root.RegisterRoutes(group)
	version.RegisterRoutes(group.Group("/version"), release)

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	controllers.RegisterAccountRoutes(group)

	authenticated := group.Group("", auth.Middleware())
	controllers.RegisterProfileRoutes(authenticated.Group("/profile"))
	controllers.RegisterCategoryRoutes(authenticated.Group("/categories"))
	controllers.RegisterTransactionRoutes(authenticated.Group("/transactions"))
	controllers.RegisterExportRoutes(authenticated)
}
