package server

import (
	"context"
	"encoding/json"
	"log"
)

// Event type constants prevent typos in event names.
const (
	EventAnswerCreated           = "answer_created"
	EventAnswerAccepted          = "answer_accepted"
	EventAnswerAcceptanceChanged = "answer_acceptance_changed"
	EventVoteUpdated             = "vote_updated"
)

func marshalEvent(eventType string, payload map[string]interface{}) (string, bool) {
	eventJSON, err := json.Marshal(map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	})
	if err != nil {
		log.Printf("failed to marshal %s event: %v", eventType, err)
		return "", false
	}
	return string(eventJSON), true
}

// publishQuestionEvent fans an event out to everyone watching a question
// page. Events go through Redis so peer instances see them too; the local
// hub receives them via its subscription. Without Redis the hub is fed
// directly.
func (s *Server) publishQuestionEvent(ctx context.Context, questionID uint, eventType string, payload map[string]interface{}) {
	message, ok := marshalEvent(eventType, payload)
	if !ok {
		return
	}
	if s.notifier != nil {
		if err := s.notifier.PublishQuestion(ctx, questionID, message); err != nil {
			log.Printf("failed to publish %s event for question %d: %v", eventType, questionID, err)
		}
		return
	}
	if s.hub != nil {
		s.hub.BroadcastQuestion(questionID, message)
	}
}

// publishUserEvent delivers a personal event to all of a user's connections.
func (s *Server) publishUserEvent(ctx context.Context, userID uint, eventType string, payload map[string]interface{}) {
	message, ok := marshalEvent(eventType, payload)
	if !ok {
		return
	}
	if s.notifier != nil {
		if err := s.notifier.PublishUser(ctx, userID, message); err != nil {
			log.Printf("failed to publish %s event to user %d: %v", eventType, userID, err)
		}
		return
	}
	if s.hub != nil {
		s.hub.Broadcast(userID, message)
	}
}
