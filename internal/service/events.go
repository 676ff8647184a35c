package service

import (
	"context"
	"time"

	"github.com/Skotchmaster/clothing_store/internal/logging"
)

const (
	TopicGoodEvents     = "good_events"
	TopicFeedbackEvents = "feedback_events"
	TopicOrderEvents    = "order_events"
)

const (
	EventGoodCreated     = "good_created"
	EventGoodUpdated     = "good_updated"
	EventFeedbackCreated = "feedback_created"
	EventOrderCreated    = "order_created"
)

type Publisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}

type NopPublisher struct{}

func (NopPublisher) PublishEvent(context.Context, string, string, any) error { return nil }

type Event struct {
	Type       string    `json:"type"`
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

// publish is best-effort: the write it reports has already happened, so a broker
// failure is logged and swallowed.
func publish(ctx context.Context, p Publisher, topic, eventType, id string, payload any) {
	if p == nil {
		return
	}
	event := Event{Type: eventType, ID: id, OccurredAt: time.Now().UTC(), Payload: payload}
	if err := p.PublishEvent(ctx, topic, id, event); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed", "topic", topic, "type", eventType, "id", id, "error", err)
	}
}
