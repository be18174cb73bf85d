package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/pageza/recipe-analyzer/backend/internal/api"
	"github.com/pageza/recipe-analyzer/backend/internal/logger"
	"github.com/pageza/recipe-analyzer/backend/internal/middleware"
)

// Options configures the engine built by SetupRouter.
type Options struct {
	ServiceName string
	CORSOrigins []string
	Logger      *logger.Logger
}

// SetupRouter configures the application routes
func SetupRouter(opts Options, handlers api.Handlers) *gin.Engine {
	router := gin.New()

	serviceName := opts.ServiceName
	if serviceName == "" {
		serviceName = "recipe-analyzer"
	}

	router.Use(
		otelgin.Middleware(serviceName),
		middleware.RequestID(),
		middleware.RequestLogger(opts.Logger),
		middleware.Metrics(),
		// Recovery runs inside the logger and metrics so a panic is logged and counted.
		middleware.Recovery(opts.Logger),
		middleware.CORS(opts.CORSOrigins),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	api.SetupAPI(router, handlers)

	return router
}
