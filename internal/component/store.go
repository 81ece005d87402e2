// Package component provides the keyed store of saved profile components.
// A component ties a profile type and dimension set to a material and its
// computed section properties.
package component

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gosection/internal/events"
	"github.com/alexiusacademia/gosection/internal/profile"
)

// Event topics published by the store.
const (
	TopicCreated = "component.created"
	TopicUpdated = "component.updated"
	TopicDeleted = "component.deleted"
)

// Component is a saved profile with its computed properties. Dimensions are
// in mm and have passed validation for the profile type; the store refuses
// anything else, so downstream consumers never see an unvalidated set.
type Component struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Profile    profile.Type        `json:"profile"`
	Dimensions profile.Dimensions  `json:"dimensions"`
	MaterialID string              `json:"material_id,omitempty"`
	Properties *profile.Properties `json:"properties"`
}

// Store is an in-memory component store.
type Store struct {
	mu         sync.Mutex
	components map[string]Component
	bus        *events.Bus
	log        *zap.Logger
}

// NewStore creates an empty component store.
func NewStore(bus *events.Bus, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		components: make(map[string]Component),
		bus:        bus,
		log:        log,
	}
}

// Create validates the dimensions, computes the section properties and
// stores the component. Invalid dimension sets are refused outright.
func (s *Store) Create(name string, t profile.Type, dims profile.Dimensions, materialID string) (Component, error) {
	if name == "" {
		return Component{}, fmt.Errorf("component name must not be empty")
	}

	result := profile.Validate(t, dims)
	if !result.IsValid {
		return Component{}, fmt.Errorf("invalid dimensions for %s: %s", t, strings.Join(result.Errors, "; "))
	}

	props, err := profile.Calculate(t, dims)
	if err != nil {
		return Component{}, err
	}

	c := Component{
		ID:         uuid.NewString(),
		Name:       name,
		Profile:    t,
		Dimensions: dims.Clone(),
		MaterialID: materialID,
		Properties: props,
	}

	s.mu.Lock()
	s.components[c.ID] = c
	s.mu.Unlock()

	s.log.Debug("component created",
		zap.String("id", c.ID),
		zap.String("name", name),
		zap.String("profile", string(t)))
	if s.bus != nil {
		s.bus.Publish(TopicCreated, c)
	}
	return c, nil
}

// Update replaces the dimension set of a component, revalidating and
// recomputing its properties.
func (s *Store) Update(id string, dims profile.Dimensions) (Component, error) {
	s.mu.Lock()
	c, ok := s.components[id]
	s.mu.Unlock()
	if !ok {
		return Component{}, fmt.Errorf("no component with id %q", id)
	}

	result := profile.Validate(c.Profile, dims)
	if !result.IsValid {
		return Component{}, fmt.Errorf("invalid dimensions for %s: %s", c.Profile, strings.Join(result.Errors, "; "))
	}

	props, err := profile.Calculate(c.Profile, dims)
	if err != nil {
		return Component{}, err
	}

	c.Dimensions = dims.Clone()
	c.Properties = props

	s.mu.Lock()
	s.components[id] = c
	s.mu.Unlock()

	s.log.Debug("component updated", zap.String("id", id))
	if s.bus != nil {
		s.bus.Publish(TopicUpdated, c)
	}
	return c, nil
}

// Delete removes a component by id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	c, ok := s.components[id]
	if ok {
		delete(s.components, id)
	}
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("no component with id %q", id)
	}

	s.log.Debug("component deleted", zap.String("id", id))
	if s.bus != nil {
		s.bus.Publish(TopicDeleted, c)
	}
	return nil
}

// Get returns a component by id.
func (s *Store) Get(id string) (Component, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.components[id]
	if !ok {
		return Component{}, fmt.Errorf("no component with id %q", id)
	}
	return c, nil
}

// List returns all components sorted by name.
func (s *Store) List() []Component {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Component, 0, len(s.components))
	for _, c := range s.components {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
