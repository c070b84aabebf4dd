package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"hospital-chatbot-backend/models"
	"hospital-chatbot-backend/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Configure properly for production
	},
}

type WebSocketController struct {
	chatbotService *services.ChatbotService
	logger         zerolog.Logger
}

func NewWebSocketController(chatbotService *services.ChatbotService, logger zerolog.Logger) *WebSocketController {
	return &WebSocketController{
		chatbotService: chatbotService,
		logger:         logger.With().Str("component", "websocket").Logger(),
	}
}

// HandleWebSocket runs the realtime chat loop over one connection. Each
// frame goes through the same pipeline as POST /chat.
func (wc *WebSocketController) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		wc.logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	for {
		var msg map[string]string
		if err := conn.ReadJSON(&msg); err != nil {
			wc.logger.Debug().Err(err).Str("session_id", sessionID).Msg("websocket read ended")
			break
		}

		req := models.ChatRequest{
			Message:   msg["message"],
			SessionID: sessionID,
			PatientID: msg["patient_id"],
		}

		response, err := wc.chatbotService.ProcessMessage(c.Request.Context(), req)
		if err != nil {
			conn.WriteJSON(map[string]interface{}{
				"error": "Failed to process message",
			})
			continue
		}

		conn.WriteJSON(response)
	}
}
