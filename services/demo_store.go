// Package services: services/demo_store.go
package services

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"sapf-site/logger"
	"sapf-site/models"
)

// DemoStore persists the demo-mode content overrides: one full replacement
// array per collection plus a flag marking demo mode active. It is the
// server-side stand-in for the browser storage the future backend will
// replace. The store is process-wide mutable state with last-writer-wins
// semantics; clearing it is acceptable data loss.

// Overrides is the persisted override set.
type Overrides struct {
	Active    bool              `json:"demoActive"`
	Events    []models.Event    `json:"events,omitempty"`
	Results   []models.Result   `json:"results,omitempty"`
	Documents []models.Document `json:"documents,omitempty"`
}

// DemoStore reads and writes the override file.
type DemoStore struct {
	mu   sync.Mutex
	path string
}

// NewDemoStore creates a store persisting to demo-store.json under dir.
func NewDemoStore(dir string) *DemoStore {
	if dir == "" {
		dir = "."
	}
	return &DemoStore{path: filepath.Join(dir, "demo-store.json")}
}

// load reads the current override set. A missing file means demo mode is
// off; a corrupt file is treated the same way rather than taking the site down.
func (s *DemoStore) load() Overrides {
	var o Overrides
	data, err := os.ReadFile(s.path)
	if err != nil {
		return o
	}
	if err := json.Unmarshal(data, &o); err != nil {
		logger.Warn.Printf("DemoStore: ignoring corrupt override file %s: %v", s.path, err)
		return Overrides{}
	}
	return o
}

// save writes the whole override set back to disk.
func (s *DemoStore) save(o Overrides) error {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Overrides returns a snapshot of the persisted override set.
func (s *DemoStore) Overrides() Overrides {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Active reports whether demo mode is on.
func (s *DemoStore) Active() bool {
	return s.Overrides().Active
}

// SaveEvents persists a full replacement events collection and marks demo
// mode active.
func (s *DemoStore) SaveEvents(events []models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.load()
	o.Events = events
	o.Active = true
	logger.Info.Printf("DemoStore: persisting %d events override", len(events))
	return s.save(o)
}

// SaveResults persists a full replacement results collection.
func (s *DemoStore) SaveResults(results []models.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.load()
	o.Results = results
	o.Active = true
	logger.Info.Printf("DemoStore: persisting %d results override", len(results))
	return s.save(o)
}

// SaveDocuments persists a full replacement documents collection.
func (s *DemoStore) SaveDocuments(docs []models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.load()
	o.Documents = docs
	o.Active = true
	logger.Info.Printf("DemoStore: persisting %d documents override", len(docs))
	return s.save(o)
}

// Reset clears all overrides and turns demo mode off.
func (s *DemoStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	logger.Info.Println("DemoStore: clearing all demo overrides")
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
