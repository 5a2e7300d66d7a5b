package websocket

import (
	"context"
	"encoding/json"

	"property-assistant-be/internal/dto"
	"property-assistant-be/internal/pkg/logger"
	"property-assistant-be/internal/service"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ChatHandler owns the websocket chat loop. Each connection gets its own
// session id, so reconnecting starts the conversation over.
type ChatHandler struct {
	conversationService service.IConversationService
	logger              logger.ILogger
}

func NewChatHandler(conversationService service.IConversationService, log logger.ILogger) *ChatHandler {
	return &ChatHandler{
		conversationService: conversationService,
		logger:              log,
	}
}

// Serve runs the read loop until the client disconnects. Turns on one
// connection are strictly sequential: read, handle, write.
func (h *ChatHandler) Serve(c *websocket.Conn) {
	sessionID := uuid.NewString()

	h.logger.Info("websocket", "client connected", map[string]interface{}{
		"session_id": sessionID,
	})

	for {
		_, raw, err := c.ReadMessage()
		if err != nil {
			h.logger.Info("websocket", "client disconnected", map[string]interface{}{
				"session_id": sessionID,
			})
			return
		}

		// Accept both the JSON envelope and bare text frames.
		var msg dto.ChatClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil || msg.Text == "" {
			msg = dto.ChatClientMessage{Text: string(raw)}
		}

		response := h.conversationService.Handle(context.Background(), sessionID, &msg)

		payload, err := json.Marshal(response)
		if err != nil {
			h.logger.Error("websocket", "failed to marshal response", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
			continue
		}

		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Warn("websocket", "failed to write response", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
			return
		}
	}
}
