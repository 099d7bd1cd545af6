// Package telemetry is the fire-and-forget analytics side channel. The core
// reports run milestones here; recorder failures are logged and never fed
// back into simulation behavior.
package telemetry

import "time"

// EventType names an analytics event.
type EventType string

const (
	EventGameStarted         EventType = "game_started"
	EventGameEnded           EventType = "game_ended"
	EventAchievementUnlocked EventType = "achievement_unlocked"
	EventDecisionApplied     EventType = "decision_applied"
)

// Metadata is free-form event context, JSON-encoded at rest.
type Metadata map[string]any

// Event is one recorded analytics row.
type Event struct {
	ID       int64     `json:"id" db:"id"`
	Run      string    `json:"run" db:"run"`
	Type     EventType `json:"type" db:"type"`
	At       time.Time `json:"at" db:"at"`
	Metadata string    `json:"metadata" db:"metadata"`
}

// Recorder receives analytics events. Implementations must never block the
// simulation on failure.
type Recorder interface {
	Record(t EventType, meta Metadata)
}

// Nop discards everything.
type Nop struct{}

// Record implements Recorder.
func (Nop) Record(EventType, Metadata) {}
