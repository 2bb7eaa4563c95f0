package routes

import (
	"foodtrucks-maroc-api-server/internal/api/handlers"
	"foodtrucks-maroc-api-server/internal/api/middleware"
	"foodtrucks-maroc-api-server/internal/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps carries the initialized handlers into the router.
type Deps struct {
	FoodTrucks *handlers.FoodTruckHandler
	Devis      *handlers.DevisHandler
	Messages   *handlers.MessageHandler
	Upload     *handlers.UploadHandler
	Settings   *handlers.SettingsHandler
	Auth       *handlers.AuthHandler
	WebSocket  *handlers.WebSocketHandler
	JWT        *auth.JWT

	// StaticUploadsDir is served under /uploads when local upload storage
	// is active; empty when S3 is configured.
	StaticUploadsDir string
}

// SetupRouter wires the HTTP surface.
func SetupRouter(d Deps) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	if d.StaticUploadsDir != "" {
		router.Static("/uploads", d.StaticUploadsDir)
	}

	api := router.Group("/api")
	{
		// Admin dashboard event stream (token checked in the handler).
		api.GET("/ws", d.WebSocket.ServeWs)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", d.Auth.Login)
		}

		// === PUBLIC ROUTES ===

		public := api.Group("/")
		{
			// Storefront reads.
			public.GET("/foodtrucks", d.FoodTrucks.GetAllFoodTrucks)
			public.GET("/foodtrucks/:id", d.FoodTrucks.GetFoodTruckByID)

			// Intake: quote requests and contact messages.
			public.POST("/devis", d.Devis.CreateDevis)
			public.POST("/messages", d.Messages.CreateMessage)
		}

		// === PROTECTED ROUTES (back-office) ===

		admin := api.Group("/")
		admin.Use(middleware.Authenticate(d.JWT))
		admin.Use(middleware.Authorize("admin"))
		{
			// Listing management.
			admin.POST("/foodtrucks", d.FoodTrucks.CreateFoodTruck)
			admin.PUT("/foodtrucks/:id", d.FoodTrucks.UpdateFoodTruck)
			admin.DELETE("/foodtrucks/:id", d.FoodTrucks.DeleteFoodTruck)

			// Quote triage.
			admin.GET("/devis", d.Devis.GetAllDevis)
			admin.PUT("/devis/:id", d.Devis.UpdateDevis)

			// Message triage.
			admin.GET("/messages", d.Messages.GetAllMessages)
			admin.GET("/messages/:id", d.Messages.GetMessageByID)
			admin.PUT("/messages/:id", d.Messages.UpdateMessageStatus)

			// Image uploads.
			admin.POST("/upload", d.Upload.Upload)
			admin.DELETE("/upload", d.Upload.Delete)

			// Site settings.
			admin.GET("/settings", d.Settings.GetSettings)
			admin.PUT("/settings", d.Settings.UpdateSettings)
		}
	}

	return router
}
