// Package services: services/content_store.go
package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"sapf-site/logger"
	"sapf-site/models"
)

// Content resource names, one JSON file per collection.
const (
	EventsResource    = "events.json"
	ResultsResource   = "results.json"
	DocumentsResource = "documents.json"
	GalleryResource   = "gallery.json"
)

// ContentStore holds the four content collections for a single page view.
// It is populated once, read-only thereafter; the filter and sort engines
// always copy, so a store is never mutated by the pipeline.
type ContentStore struct {
	Events    []models.Event
	Results   []models.Result
	Documents []models.Document
	Images    []models.GalleryImage
}

// LoadContent fetches the four JSON resources concurrently and joins all
// four before returning. A failure in any one load (fetch error or malformed
// JSON) aborts the whole load: the caller gets a single error and renders
// nothing from partial data.
func LoadContent(fetcher Fetcher) (*ContentStore, error) {
	store := &ContentStore{}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	load := func(name string, decode func([]byte) error) {
		defer wg.Done()
		data, err := fetcher.Fetch(name)
		if err == nil {
			err = decode(data)
		}
		if err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("load %s: %w", name, err)
			}
			mu.Unlock()
		}
	}

	wg.Add(4)
	go load(EventsResource, func(b []byte) error {
		var f models.EventsFile
		if err := json.Unmarshal(b, &f); err != nil {
			return err
		}
		store.Events = f.Events
		return nil
	})
	go load(ResultsResource, func(b []byte) error {
		var f models.ResultsFile
		if err := json.Unmarshal(b, &f); err != nil {
			return err
		}
		store.Results = f.Results
		return nil
	})
	go load(DocumentsResource, func(b []byte) error {
		var f models.DocumentsFile
		if err := json.Unmarshal(b, &f); err != nil {
			return err
		}
		store.Documents = f.Documents
		return nil
	})
	go load(GalleryResource, func(b []byte) error {
		var f models.GalleryFile
		if err := json.Unmarshal(b, &f); err != nil {
			return err
		}
		store.Images = f.Images
		return nil
	})
	wg.Wait()

	if firstErr != nil {
		logger.Error.Printf("LoadContent: %v", firstErr)
		return nil, firstErr
	}
	logger.Debug.Printf("LoadContent: %d events, %d results, %d documents, %d images",
		len(store.Events), len(store.Results), len(store.Documents), len(store.Images))
	return store, nil
}

// ApplyOverrides replaces fetched collections wholesale with any demo
// overrides. An override, when present, is used verbatim; collections
// without one keep the fetched data.
func (s *ContentStore) ApplyOverrides(o Overrides) {
	if !o.Active {
		return
	}
	if o.Events != nil {
		s.Events = o.Events
	}
	if o.Results != nil {
		s.Results = o.Results
	}
	if o.Documents != nil {
		s.Documents = o.Documents
	}
}

// EventByID finds an event in the store; ok is false when absent.
func (s *ContentStore) EventByID(id int) (models.Event, bool) {
	for _, e := range s.Events {
		if e.ID == id {
			return e, true
		}
	}
	return models.Event{}, false
}
