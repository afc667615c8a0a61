package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"otigox-task/internal/transport/http/handler"
	mdw "otigox-task/internal/transport/http/middleware"
)

type Options struct {
	RateRPS        float64
	RateBurst      int
	MaxConcurrent  int64
	MaxBodyBytes   int64
	HandlerTimeout time.Duration
}

func (o *Options) withDefaults() {
	if o.RateRPS <= 0 {
		o.RateRPS = 200
	}
	if o.RateBurst <= 0 {
		o.RateBurst = 400
	}
	if o.MaxConcurrent <= 0 {
		o.MaxConcurrent = 300
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = 16 << 20
	}
	if o.HandlerTimeout <= 0 {
		o.HandlerTimeout = 10 * time.Second
	}
}

// NewAPIEngine wires the middleware chain and mounts the two resource
// groups. Handlers come in via explicit constructor parameters; there is
// no global registry.
func NewAPIEngine(l *zap.Logger, userH *handler.UserHandler, projectH *handler.ProjectHandler, opt Options) *gin.Engine {
	opt.withDefaults()

	r := gin.New()
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(rate.Limit(opt.RateRPS), opt.RateBurst),
		mdw.ConcurrencyLimit(opt.MaxConcurrent),
		mdw.MaxBodyBytes(opt.MaxBodyBytes),
		mdw.Timeout(opt.HandlerTimeout),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	userH.Mount(r.Group("/users"))
	projectH.Mount(r.Group("/projects"))

	return r
}
