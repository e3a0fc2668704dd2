package operations

import (
	"sync"

	"crashprep/internal/domain"
	"crashprep/internal/loader"
)

// State carries the data between pipeline steps. Raw tables are populated by
// the load step and consumed by the recode step; typed slices flow through
// the rest of the pipeline. Step states are tracked per step ID.
type State struct {
	ID string

	// Raw tables keyed by input kind (crash, vehicle, person, roadway).
	RawTables map[string]*loader.RawTable

	// Typed entities, populated by recode and mutated in place by resolve.
	Crashes  []domain.CrashEvent
	Units    []domain.VehicleUnit
	Persons  []domain.PersonRecord
	Segments []domain.RoadwaySegment

	// Joined output, populated by join and refined by impute and derive.
	Cyclists []domain.CyclistCrashRecord

	mu    sync.RWMutex
	steps map[string]*StepState
}

// NewState creates a run state with the given run ID.
func NewState(id string) *State {
	return &State{
		ID:        id,
		RawTables: make(map[string]*loader.RawTable),
		steps:     make(map[string]*StepState),
	}
}

// RegisterStep adds a pending step state for the given step.
func (s *State) RegisterStep(step Step) *StepState {
	s.mu.Lock()
	defer s.mu.Unlock()

	ss := NewStepState(step.ID(), step.Name())
	s.steps[step.ID()] = ss
	return ss
}

// StepState returns the state of the step with the given ID, or nil.
func (s *State) StepState(id string) *StepState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.steps[id]
}
