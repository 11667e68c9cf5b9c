package events

import (
	"sync"

	"marketplace-auction/utils"
)

// Event is one domain event: a topic plus a flat payload.
type Event struct {
	Topic   string
	Payload map[string]any
}

// Publisher receives domain events emitted by completed operations.
// Events are emitted only after every validation has passed and the
// record write has been applied.
type Publisher interface {
	Publish(topic string, payload map[string]any)
}

// LogPublisher writes every event to the structured log.
type LogPublisher struct{}

// Publish logs topic and payload at info level.
func (LogPublisher) Publish(topic string, payload map[string]any) {
	fields := map[string]any{"event": topic}
	for k, v := range payload {
		fields[k] = v
	}
	utils.Info("domain event", fields)
}

// Recorder captures events in memory. Test double.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder creates an empty event recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Publish appends the event to the recorded list.
func (r *Recorder) Publish(topic string, payload map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Topic: topic, Payload: payload})
}

// Events returns a copy of everything published so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Topics returns the topics published so far, in order.
func (r *Recorder) Topics() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	topics := make([]string, 0, len(r.events))
	for _, e := range r.events {
		topics = append(topics, e.Topic)
	}
	return topics
}
