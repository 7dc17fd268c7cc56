package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mishasvintus/mergington_activities/internal/handler"
	"github.com/mishasvintus/mergington_activities/internal/middleware"
)

// IndexPath is where the root path redirects to.
const IndexPath = "/static/index.html"

// Options carries the non-handler dependencies of the router.
type Options struct {
	Logger    *zap.Logger
	Gatherer  prometheus.Gatherer
	StaticDir string
}

// SetupRoutes configures all API routes.
func SetupRoutes(activityHandler *handler.ActivityHandler, opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, IndexPath)
	})
	r.GET("/static/*filepath", staticFiles(opts.StaticDir))
	r.HEAD("/static/*filepath", staticFiles(opts.StaticDir))

	// Activity endpoints
	r.GET("/activities", activityHandler.ListActivities)
	r.POST("/activities/:name/signup", activityHandler.SignUp)
	r.POST("/activities/:name/drop", activityHandler.Drop)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	return r
}
