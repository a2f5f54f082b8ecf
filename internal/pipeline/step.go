package pipeline

import (
	"context"
	"sync"
	"time"
)

// Step is one stage of a report run
type Step interface {
	// ID returns the unique identifier for this Step
	ID() string

	// Name returns the human-readable name for this Step
	Name() string

	// Execute runs the Step against the shared run state
	Execute(ctx context.Context, state *RunState) error
}

// StepStatus represents the current status of a Step
type StepStatus string

const (
	StepStatusPending   StepStatus = "pending"
	StepStatusActive    StepStatus = "active"
	StepStatusCompleted StepStatus = "completed"
	StepStatusFailed    StepStatus = "failed"
	StepStatusSkipped   StepStatus = "skipped"
)

// legalTransitions lists the states each status may move to. Terminal
// states have no entry.
var legalTransitions = map[StepStatus][]StepStatus{
	StepStatusPending: {StepStatusActive, StepStatusSkipped},
	StepStatusActive:  {StepStatusCompleted, StepStatusFailed},
}

// StepState tracks one step through a run. Transitions that are not legal
// from the current status are ignored, so a finished step keeps its outcome.
type StepState struct {
	mu       sync.RWMutex
	id       string
	name     string
	status   StepStatus
	started  time.Time
	ended    time.Time
	message  string
	err      error
	metadata map[string]interface{}
}

// NewStepState creates a pending step state
func NewStepState(id, name string) *StepState {
	return &StepState{
		id:       id,
		name:     name,
		status:   StepStatusPending,
		metadata: make(map[string]interface{}),
	}
}

// moveTo switches to status when legal. Callers hold s.mu.
func (s *StepState) moveTo(status StepStatus) bool {
	for _, next := range legalTransitions[s.status] {
		if next == status {
			s.status = status
			return true
		}
	}
	return false
}

// Start marks the step active
func (s *StepState) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.moveTo(StepStatusActive) {
		return false
	}
	s.started = time.Now()
	return true
}

// Complete marks an active step completed
func (s *StepState) Complete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.moveTo(StepStatusCompleted) {
		return false
	}
	s.ended = time.Now()
	return true
}

// Fail marks an active step failed with err
func (s *StepState) Fail(err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.moveTo(StepStatusFailed) {
		return false
	}
	s.ended = time.Now()
	s.err = err
	if err != nil {
		s.message = err.Error()
	}
	return true
}

// Skip marks a pending step skipped with reason
func (s *StepState) Skip(reason string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.moveTo(StepStatusSkipped) {
		return false
	}
	s.message = reason
	return true
}

// SetMetadata records a value describing the step's work
func (s *StepState) SetMetadata(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metadata[key] = value
}

// Status returns the current status
func (s *StepState) Status() StepStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.status
}

// Err returns the error a failed step ended with
func (s *StepState) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.err
}

// Duration is zero before the step starts and grows until it ends
func (s *StepState) Duration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.durationLocked()
}

func (s *StepState) durationLocked() time.Duration {
	switch {
	case s.started.IsZero():
		return 0
	case s.ended.IsZero():
		return time.Since(s.started)
	default:
		return s.ended.Sub(s.started)
	}
}

// Snapshot returns a consistent copy of the state
func (s *StepState) Snapshot() StepSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var metadata map[string]interface{}
	if len(s.metadata) > 0 {
		metadata = make(map[string]interface{}, len(s.metadata))
		for k, v := range s.metadata {
			metadata[k] = v
		}
	}
	return StepSummary{
		ID:       s.id,
		Name:     s.name,
		Status:   s.status,
		Duration: s.durationLocked(),
		Message:  s.message,
		Metadata: metadata,
	}
}

// BaseStep provides the identity half of a Step
type BaseStep struct {
	id   string
	name string
}

// NewBaseStep creates a new base Step
func NewBaseStep(id, name string) BaseStep {
	return BaseStep{id: id, name: name}
}

// ID returns the Step ID
func (b *BaseStep) ID() string {
	return b.id
}

// Name returns the Step name
func (b *BaseStep) Name() string {
	return b.name
}
