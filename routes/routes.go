package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"hospital-chatbot-backend/config"
	"hospital-chatbot-backend/controllers"
	"hospital-chatbot-backend/repositories"
	"hospital-chatbot-backend/services"
)

// SetupRoutes wires repositories, services and controllers onto the router.
// All handles come in from main; nothing here reaches for globals.
func SetupRoutes(router *gin.Engine, cfg *config.Config, db *mongo.Database, logger zerolog.Logger) {
	// Repositories
	doctorRepo := repositories.NewDoctorRepository(db)
	availabilityRepo := repositories.NewAvailabilityRepository(db)
	appointmentRepo := repositories.NewAppointmentRepository(db)
	messageRepo := repositories.NewMessageRepository(db)

	// All relative dates resolve against the clinic's fixed timezone.
	location := cfg.Location()
	clock := func() time.Time { return time.Now().In(location) }

	// Services
	aiService := services.NewAIService(cfg)
	extractor := services.NewIntentExtractor(aiService, logger)
	sessions := services.NewSessionStore(cfg.Chat.HistoryWindow)
	bookingService := services.NewBookingService(doctorRepo, availabilityRepo, appointmentRepo, logger)
	recommendationService := services.NewRecommendationService(aiService, doctorRepo, bookingService, logger)
	infoService := services.NewInfoService(doctorRepo, logger)
	chatbotService := services.NewChatbotService(
		aiService,
		extractor,
		bookingService,
		recommendationService,
		infoService,
		sessions,
		messageRepo,
		cfg.Chat.DefaultPatientID,
		clock,
		logger,
	)

	// Controllers
	chatbotController := controllers.NewChatbotController(chatbotService)
	wsController := controllers.NewWebSocketController(chatbotService, logger)
	doctorController := controllers.NewDoctorController(doctorRepo)
	appointmentController := controllers.NewAppointmentController(bookingService, clock)

	// Public routes
	public := router.Group("/api/v1")
	{
		public.POST("/chat", chatbotController.HandleChat)
		public.GET("/doctors", doctorController.ListDoctors)
		public.POST("/appointments", appointmentController.CreateAppointment)

		// WebSocket for real-time chat
		public.GET("/ws", wsController.HandleWebSocket)
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})
}
