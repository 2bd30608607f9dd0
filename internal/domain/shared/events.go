// Package shared contains common domain types, errors, and events that are
// used across all domain packages.
package shared

import (
	"context"
	"time"
)

// EventType represents the type of domain event.
type EventType string

// Domain event types - each event represents something significant that
// happened in the domain.
const (
	// Tutor events
	EventTutorApplied        EventType = "tutor.applied"
	EventTutorApproved       EventType = "tutor.approved"
	EventTutorRejected       EventType = "tutor.rejected"
	EventTutorProfileUpdated EventType = "tutor.profile_updated"

	// Request events
	EventRequestSubmitted EventType = "request.submitted"
	EventRequestMatched   EventType = "request.matched"

	// Chat events
	EventSessionStarted EventType = "chat.session_started"
	EventMessageSent    EventType = "chat.message_sent"

	// Student account events
	EventStudentActivated EventType = "student.activated"
	EventStudentSuspended EventType = "student.suspended"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event.
	AggregateID() string
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	Type        EventType `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	AggregateId string    `json:"aggregate_id"`
}

// EventType implements Event interface.
func (e BaseEvent) EventType() EventType {
	return e.Type
}

// OccurredAt implements Event interface.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// AggregateID implements Event interface.
func (e BaseEvent) AggregateID() string {
	return e.AggregateId
}

// NewBaseEvent creates a BaseEvent with the current UTC timestamp.
func NewBaseEvent(eventType EventType, aggregateID string) BaseEvent {
	return BaseEvent{
		Type:        eventType,
		Timestamp:   time.Now().UTC(),
		AggregateId: aggregateID,
	}
}

// EventHandler processes a single domain event.
type EventHandler interface {
	Handle(ctx context.Context, event Event) error
}

// EventHandlerFunc adapts a plain function to the EventHandler interface.
type EventHandlerFunc func(ctx context.Context, event Event) error

// Handle implements EventHandler.
func (f EventHandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// EventPublisher publishes domain events to interested subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...Event) error
}

// NoopPublisher discards all events. Useful for tests and for commands
// that are wired without an event bus.
type NoopPublisher struct{}

// Publish implements EventPublisher.
func (NoopPublisher) Publish(ctx context.Context, events ...Event) error {
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Concrete events
// ─────────────────────────────────────────────────────────────────────────────

// TutorAppliedEvent fires when a new tutor application enters moderation.
type TutorAppliedEvent struct {
	BaseEvent
	TutorName string
}

// TutorApprovedEvent fires when an admin approves a tutor profile.
type TutorApprovedEvent struct {
	BaseEvent
	TutorName string
}

// TutorRejectedEvent fires when an admin rejects a tutor profile.
type TutorRejectedEvent struct {
	BaseEvent
	TutorName string
}

// RequestMatchedEvent fires when an admin assigns a tutor to a student request.
type RequestMatchedEvent struct {
	BaseEvent
	StudentID string
	TutorID   string
	SessionID string
	// SessionCreated is false when the pair already had a chat session.
	SessionCreated bool
}

// MessageSentEvent fires when a chat message is appended to a session.
type MessageSentEvent struct {
	BaseEvent
	SenderID string
}
