package api

import (
	stdhttp "net/http"

	intconfig "touristguide/internal/config"
	h "touristguide/internal/http/handlers"
	"touristguide/internal/http/middleware"
	"touristguide/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(env intconfig.Env, handlers *h.Handlers, log logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), middleware.Metrics(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.WithError(err).Warn("failed to set trusted proxies", nil)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/", handlers.Root)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)
		api.GET("/routes", handlers.Routes)

		api.POST("/plan-trip", handlers.PlanTrip)
		api.POST("/nearby", handlers.NearbyPlaces)
		api.POST("/translate", handlers.Translate)
		api.GET("/history", handlers.History)

		itineraries := api.Group("/itineraries")
		itineraries.GET("/:id", handlers.GetItinerary)
		itineraries.GET("/:id/pdf", handlers.ItineraryPDF)
		itineraries.GET("/:id/ics", handlers.ItineraryICS)
	}

	handlers.SetRouter(r)
	return r
}
