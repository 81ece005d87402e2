// Package state keeps the view and table state of the calculator UI and
// persists it as a JSON file between sessions. Persistence is best-effort:
// a missing or unreadable state file falls back to defaults.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/alexiusacademia/gosection/internal/events"
)

// TopicChanged is published whenever the view state is replaced.
const TopicChanged = "state.changed"

// ViewState is the persisted UI state: active view, table sorting and the
// display units the user last picked.
type ViewState struct {
	ActiveView     string `json:"active_view"`
	SortColumn     string `json:"sort_column"`
	SortDescending bool   `json:"sort_descending"`
	LengthUnit     string `json:"length_unit"`
	WeightUnit     string `json:"weight_unit"`
}

// DefaultViewState is the state of a fresh session.
var DefaultViewState = ViewState{
	ActiveView: "calculator",
	SortColumn: "name",
	LengthUnit: "mm",
	WeightUnit: "kg",
}

// Store owns the current ViewState.
type Store struct {
	mu    sync.Mutex
	state ViewState
	bus   *events.Bus
	log   *zap.Logger
}

// NewStore creates a store holding DefaultViewState.
func NewStore(bus *events.Bus, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{state: DefaultViewState, bus: bus, log: log}
}

// Get returns the current state.
func (s *Store) Get() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Set replaces the current state and notifies subscribers.
func (s *Store) Set(state ViewState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(TopicChanged, state)
	}
}

// Save writes the current state as JSON, creating parent directories as
// needed.
func (s *Store) Save(path string) error {
	s.mu.Lock()
	state := s.state
	s.mu.Unlock()

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	s.log.Debug("state saved", zap.String("path", path))
	return nil
}

// Load reads a previously saved state. A missing file is not an error; the
// store simply keeps its defaults.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.log.Debug("no state file, using defaults", zap.String("path", path))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read state file: %w", err)
	}

	var state ViewState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to decode state file: %w", err)
	}

	s.Set(state)
	s.log.Debug("state loaded", zap.String("path", path))
	return nil
}
