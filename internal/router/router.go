// Package router sets up all HTTP routes for the API.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cosmos-reader/cosmos-reader-api/internal/cache"
	"github.com/cosmos-reader/cosmos-reader-api/internal/database"
	"github.com/cosmos-reader/cosmos-reader-api/internal/handlers"
	"github.com/cosmos-reader/cosmos-reader-api/internal/middleware"
	"github.com/cosmos-reader/cosmos-reader-api/internal/services/ai"
	"github.com/cosmos-reader/cosmos-reader-api/internal/services/spaceweather"
	"github.com/cosmos-reader/cosmos-reader-api/internal/services/worker"
	"github.com/cosmos-reader/cosmos-reader-api/internal/storage"
)

// Setup creates and configures the Gin router with all routes.
func Setup(db *database.DB, wp *worker.Pool, aiSvc *ai.Service, sw *spaceweather.Service, store *storage.ObjectStore, c *cache.Cache, jwtSecret string, userRateLimit int, allowedOrigins []string) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORS(allowedOrigins))

	h := handlers.NewHandler(db, wp, aiSvc, sw, store, c, jwtSecret)
	rateLimiter := middleware.NewRateLimiter(userRateLimit)

	// --- Public Routes (no auth required) ---
	r.GET("/api/v1/health", h.HealthCheck)
	r.POST("/api/v1/auth/register", h.Register)
	r.POST("/api/v1/auth/login", h.Login)

	// --- JWT-protected routes ---
	protected := r.Group("/api/v1")
	protected.Use(middleware.JWTAuth(db, jwtSecret))
	protected.Use(rateLimiter.RateLimit())
	{
		protected.GET("/auth/me", h.GetMe)
		protected.POST("/auth/refresh", h.RefreshToken)

		// Library
		protected.POST("/books", h.CreateTextBook)
		protected.POST("/books/upload", h.UploadPDFBook) // must be before :id
		protected.GET("/books", h.ListBooks)
		protected.GET("/books/:id", h.GetBook)
		protected.DELETE("/books/:id", h.DeleteBook)
		protected.GET("/books/:id/view-url", h.GetViewURL)

		// Reading
		protected.GET("/books/:id/reader", h.GetReaderView)
		protected.POST("/books/:id/progress", h.UpdateProgress)

		// Keywords
		protected.GET("/books/:id/keywords", h.GetBookKeywords)
		protected.GET("/books/:id/keywords/preview", h.PreviewKeywords)
		protected.POST("/books/:id/keywords/analyze", h.AnalyzeBook)
		protected.GET("/keywords", h.LibraryKeywords)
		protected.POST("/keywords/analyze-all", h.AnalyzeAllBooks)

		// Glossary and click tracking
		protected.GET("/glossary", h.ListGlossary)
		protected.GET("/glossary/:term", h.GetGlossaryEntry)
		protected.POST("/stats/keyword-click", h.RecordKeywordClick)
		protected.GET("/stats", h.GetStats)

		// Gamification
		protected.GET("/achievements", h.GetAchievements)
		protected.GET("/leaderboard", h.GetLeaderboard)
		protected.GET("/leaderboard/daily-pages", h.GetDailyPagesBoard)
		protected.GET("/leaderboard/weekly-keywords", h.GetWeeklyKeywordsBoard)
		protected.GET("/leaderboard/collectors", h.GetCollectorsBoard)

		// Space weather
		protected.GET("/space-weather", h.GetSpaceWeather)
		protected.POST("/space-weather/trending", h.GetTrendingTopics)

		// Assistant
		protected.GET("/chat", h.GetChat)
		protected.POST("/chat", h.SendChatMessage)

		// Coloring pages
		protected.POST("/coloring-images", h.CreateColoringImage)
	}

	return r
}
