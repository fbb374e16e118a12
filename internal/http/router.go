// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/http/handlers"
	"voyago/internal/http/middleware"
	"voyago/internal/maps"
	"voyago/internal/modules/conversation"
)

func NewRouter(chatSvc *conversation.Service, geoSvc *maps.GeocodingService) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging())
	r.Use(middleware.Recovery())

	chatHandler := handlers.NewChatHandler(chatSvc)
	r.POST("/api/chat", chatHandler.Chat)

	geocodeHandler := handlers.NewGeocodeHandler(geoSvc)
	r.POST("/api/geocode", geocodeHandler.Geocode)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
