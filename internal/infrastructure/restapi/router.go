package restapi

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"vibe_tracker/internal/infrastructure/configloader"
	"vibe_tracker/internal/pkg/logger"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Proxy     *ProxyHandler
	Dashboard *DashboardHandler
	State     *StateHandler
	Trade     *TradeHandler
}

// proxyMethods are the verbs accepted by the proxy route.
var proxyMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}

// SetupRouter настраивает и возвращает экземпляр Gin роутера.
func SetupRouter(h Handlers, cfg *configloader.Config, zapLogger *zap.Logger) *gin.Engine {
	router := gin.New()
	// Proxied paths are relayed as received, without unescaping.
	router.UseRawPath = true
	router.UnescapePathValues = false

	router.Use(cors.New(corsConfig(cfg.CORS)))
	router.Use(logger.GinMiddleware(zapLogger))
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	for _, method := range proxyMethods {
		router.Handle(method, "/proxy/*path", h.Proxy.Handle)
	}

	// Группа для API v1
	v1 := router.Group("/api/v1")
	{
		v1.GET("/config", h.Dashboard.GetConfig)
		v1.POST("/dashboard/refresh", h.Dashboard.Refresh)
		v1.GET("/packs", h.Dashboard.GetPacks)
		v1.GET("/activity", h.Dashboard.GetActivity)
		v1.GET("/creators", h.Dashboard.GetCreators)
		v1.GET("/profile", h.Dashboard.GetProfile)

		v1.GET("/state", h.State.GetState)
		v1.PUT("/state/wallet", h.State.SetWallet)
		v1.PUT("/state/tab", h.State.SetTab)
		v1.POST("/state/theme", h.State.ToggleTheme)

		v1.GET("/trade", h.Trade.List)
		v1.POST("/trade", h.Trade.Add)
		v1.DELETE("/trade/:id", h.Trade.Remove)
		v1.POST("/trade/import", h.Trade.Import)
	}

	return router
}

func corsConfig(c configloader.CORSConfig) cors.Config {
	corsCfg := cors.DefaultConfig()
	if len(c.AllowOrigins) == 0 || slices.Contains(c.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = c.AllowOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	return corsCfg
}
