package material

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gosection/internal/events"
)

// Event topics published by the store.
const (
	TopicCreated = "material.created"
	TopicUpdated = "material.updated"
	TopicDeleted = "material.deleted"
)

// Record is a stored material with its assigned id.
type Record struct {
	ID string `json:"id"`
	Material
}

// Store is a keyed in-memory material store seeded with the built-in
// library. Mutations validate first and publish events on success.
type Store struct {
	mu      sync.Mutex
	records map[string]Record
	byName  map[string]string // Name() → id
	bus     *events.Bus
	log     *zap.Logger
}

// NewStore creates a store seeded with Builtins.
func NewStore(bus *events.Bus, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		records: make(map[string]Record),
		byName:  make(map[string]string),
		bus:     bus,
		log:     log,
	}
	for _, m := range Builtins {
		id := uuid.NewString()
		s.records[id] = Record{ID: id, Material: m}
		s.byName[m.Name()] = id
	}
	return s
}

// Create validates and stores a new material, returning its record.
func (s *Store) Create(m Material) (Record, error) {
	if err := m.Validate(); err != nil {
		return Record{}, err
	}

	s.mu.Lock()
	if _, exists := s.byName[m.Name()]; exists {
		s.mu.Unlock()
		return Record{}, fmt.Errorf("material %q already exists", m.Name())
	}
	rec := Record{ID: uuid.NewString(), Material: m}
	s.records[rec.ID] = rec
	s.byName[m.Name()] = rec.ID
	s.mu.Unlock()

	s.log.Debug("material created", zap.String("id", rec.ID), zap.String("name", m.Name()))
	if s.bus != nil {
		s.bus.Publish(TopicCreated, rec)
	}
	return rec, nil
}

// Update replaces the material stored under id.
func (s *Store) Update(id string, m Material) (Record, error) {
	if err := m.Validate(); err != nil {
		return Record{}, err
	}

	s.mu.Lock()
	old, ok := s.records[id]
	if !ok {
		s.mu.Unlock()
		return Record{}, fmt.Errorf("no material with id %q", id)
	}
	delete(s.byName, old.Name())
	rec := Record{ID: id, Material: m}
	s.records[id] = rec
	s.byName[m.Name()] = id
	s.mu.Unlock()

	s.log.Debug("material updated", zap.String("id", id), zap.String("name", m.Name()))
	if s.bus != nil {
		s.bus.Publish(TopicUpdated, rec)
	}
	return rec, nil
}

// Delete removes a material by id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	rec, ok := s.records[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("no material with id %q", id)
	}
	delete(s.records, id)
	delete(s.byName, rec.Name())
	s.mu.Unlock()

	s.log.Debug("material deleted", zap.String("id", id), zap.String("name", rec.Name()))
	if s.bus != nil {
		s.bus.Publish(TopicDeleted, rec)
	}
	return nil
}

// Get returns a material by id.
func (s *Store) Get(id string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	if !ok {
		return Record{}, fmt.Errorf("no material with id %q", id)
	}
	return rec, nil
}

// GetByName looks a material up by its "type grade" display name.
func (s *Store) GetByName(name string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byName[name]
	if !ok {
		return Record{}, fmt.Errorf("no material named %q", name)
	}
	return s.records[id], nil
}

// List returns all materials sorted by name.
func (s *Store) List() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}
