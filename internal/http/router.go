// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"skyquote/internal/http/handlers"
	"skyquote/internal/http/middleware"
	"skyquote/internal/logger"
	"skyquote/internal/modules/catalog"
	"skyquote/internal/modules/dialogue"
	"skyquote/internal/modules/pricing"
)

type RouterDeps struct {
	Catalog        *catalog.Catalog
	Engine         *pricing.Engine
	Dialogue       *dialogue.Service
	ExtractorModel string
	Log            logger.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log))
	r.Use(middleware.Logging(deps.Log))

	quoteHandler := handlers.NewQuoteHandler(deps.Catalog, deps.Engine)
	chatHandler := handlers.NewChatHandler(deps.Dialogue)
	statusHandler := handlers.NewStatusHandler(deps.Catalog, deps.ExtractorModel)

	r.POST("/api/quote", quoteHandler.Quote)
	r.POST("/api/chat", chatHandler.Chat)
	r.GET("/api/status", statusHandler.Status)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
