package server

import (
	"encoding/json"
	"log"
	"time"

	"qenea/internal/models"
	"qenea/internal/notifications"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const wsTicketTTL = 30 * time.Second

// IssueWSTicket handles POST /api/ws/ticket
// @Summary Issue a WebSocket ticket
// @Description Return a short-lived single-use ticket for opening a WebSocket connection
// @Tags websocket
// @Produce json
// @Success 200 {object} object{ticket=string,expires_in=int}
// @Failure 401 {object} object{error=string}
// @Failure 503 {object} object{error=string}
// @Security BearerAuth
// @Router /ws/ticket [post]
func (s *Server) IssueWSTicket(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	if !s.flags.Enabled("realtime", userID) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Realtime updates are not enabled for this account"))
	}
	if s.redis == nil {
		return models.RespondWithError(c, fiber.StatusServiceUnavailable,
			models.NewInternalError(nil))
	}

	ticket := uuid.New().String()
	key := "ws_ticket:" + ticket
	if err := s.redis.Set(c.Context(), key, userID, wsTicketTTL).Err(); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"ticket":     ticket,
		"expires_in": int(wsTicketTTL.Seconds()),
	})
}

// WebsocketHandler handles GET /api/ws, upgrading to a WebSocket connection
// for live question-page updates and personal notifications. Clients send
// {"type":"subscribe","question_id":N} to watch a question page and
// {"type":"unsubscribe","question_id":N} to stop.
func (s *Server) WebsocketHandler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		// Get userID from context locals (set by AuthRequired middleware)
		userIDVal := conn.Locals("userID")
		if userIDVal == nil {
			log.Printf("WebSocket: Unauthenticated connection attempt")
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"unauthorized"}`))
			_ = conn.Close()
			return
		}
		userID := userIDVal.(uint)

		if !s.flags.Enabled("realtime", userID) {
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"realtime disabled"}`))
			_ = conn.Close()
			return
		}

		if s.hub == nil {
			_ = conn.Close()
			return
		}

		client, err := s.hub.Register(userID, conn)
		if err != nil {
			log.Printf("WebSocket: Failed to register user %d: %v", userID, err)
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"`+err.Error()+`"}`))
			_ = conn.Close()
			return
		}

		client.IncomingHandler = func(c *notifications.Client, message []byte) {
			var incomingMsg struct {
				Type       string `json:"type"`
				QuestionID uint   `json:"question_id"`
			}
			if err := json.Unmarshal(message, &incomingMsg); err != nil {
				log.Printf("WebSocket: Invalid message format from user %d", userID)
				return
			}
			if incomingMsg.QuestionID == 0 {
				return
			}

			switch incomingMsg.Type {
			case "subscribe":
				s.hub.Watch(c, incomingMsg.QuestionID)
				c.TrySend([]byte(`{"type":"subscribed"}`))
			case "unsubscribe":
				s.hub.Unwatch(c, incomingMsg.QuestionID)
			}
		}

		// WritePump in a goroutine; ReadPump blocks until the client
		// disconnects and unregisters on exit.
		go client.WritePump()
		client.ReadPump()
	})
}
