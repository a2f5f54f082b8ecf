package pipeline

import (
	"sync"
	"time"

	"hrreport/internal/enrichment"
	"hrreport/pkg/contracts/domain"
)

// RunState carries the data handed from one Step to the next
type RunState struct {
	mu sync.RWMutex

	ID         string
	InputFile  string
	OutputFile string
	StartTime  time.Time

	Table  *domain.Table
	Result *enrichment.Result

	order []string
	steps map[string]*StepState
}

// NewRunState creates the state for one run
func NewRunState(id, inputFile, outputFile string) *RunState {
	return &RunState{
		ID:         id,
		InputFile:  inputFile,
		OutputFile: outputFile,
		StartTime:  time.Now(),
		steps:      make(map[string]*StepState),
	}
}

// AddStep registers a pending state for step
func (s *RunState) AddStep(step Step) *StepState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.steps[step.ID()]; ok {
		return st
	}
	st := NewStepState(step.ID(), step.Name())
	s.steps[step.ID()] = st
	s.order = append(s.order, step.ID())
	return st
}

// GetStep returns the state of the step with id, or nil
func (s *RunState) GetStep(id string) *StepState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.steps[id]
}

// Steps returns the step states in execution order
func (s *RunState) Steps() []*StepState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*StepState, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.steps[id])
	}
	return out
}
