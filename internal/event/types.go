package event

import "time"

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "stage.changed").
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// Event type identifiers.
const (
	TypeStageChanged        = "stage.changed"
	TypeGenerationCompleted = "generation.completed"
)

// Stage is a step of one generation.
type Stage string

const (
	StageValidate Stage = "validate"
	StageCompose  Stage = "compose"
	StageVerify   Stage = "verify"
	StageRender   Stage = "render"
	StageDone     Stage = "done"
	StageFailed   Stage = "failed"
)

// Terminal reports whether no further stage follows.
func (s Stage) Terminal() bool {
	return s == StageDone || s == StageFailed
}

// StageChangedEvent is published when a generation moves to a new stage.
type StageChangedEvent struct {
	baseEvent
	RunID    string
	Previous Stage
	Current  Stage
}

// NewStageChangedEvent creates a StageChangedEvent.
func NewStageChangedEvent(runID string, previous, current Stage) StageChangedEvent {
	return StageChangedEvent{
		baseEvent: newBaseEvent(TypeStageChanged),
		RunID:     runID,
		Previous:  previous,
		Current:   current,
	}
}

// GenerationCompletedEvent is published once per generation, after the
// last stage.
type GenerationCompletedEvent struct {
	baseEvent
	RunID        string
	Success      bool
	ImagePath    string
	Error        string
	Duplicates   int
	Placeholders int
	Duration     time.Duration
}

// NewGenerationCompletedEvent creates a GenerationCompletedEvent. A nil err
// marks success.
func NewGenerationCompletedEvent(runID, imagePath string, err error, duplicates, placeholders int, d time.Duration) GenerationCompletedEvent {
	e := GenerationCompletedEvent{
		baseEvent:    newBaseEvent(TypeGenerationCompleted),
		RunID:        runID,
		Success:      err == nil,
		ImagePath:    imagePath,
		Duplicates:   duplicates,
		Placeholders: placeholders,
		Duration:     d,
	}
	if err != nil {
		e.Error = err.Error()
	}
	return e
}
