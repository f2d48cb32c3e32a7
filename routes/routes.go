package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"showphaze/handlers"
	"showphaze/utils"
)

// RegisterAgentRoutes registers the booking agent endpoints.
func RegisterAgentRoutes(r *gin.Engine, agent *handlers.AgentHandler, stt *handlers.STTHandler) {
	api := r.Group("/api/ai")
	{
		api.POST("/query", agent.QueryHandler)
		api.POST("/book", agent.BookHandler)
		api.GET("/session/:sessionID", agent.GetSessionHandler)
		api.POST("/stt", stt.TranscribeHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, agent *handlers.AgentHandler, stt *handlers.STTHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAgentRoutes(r, agent, stt)
	RegisterHealthRoute(r)
}
