// Package models defines data structures used across the application.
// File: models/content.go
package models

// ----------------------- enumerated values -----------------------

// Discipline values with dedicated styling; anything else is bucketed as general.
const (
	DisciplineISSF = "ISSF"
	DisciplineNPA  = "NPA/PPC"
)

// Event status values; anything else is treated as neither upcoming nor completed.
const (
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
)

// Document categories with a dedicated icon; unrecognized categories get a default icon.
const (
	CategoryRulebook  = "Rulebook"
	CategoryEntryForm = "Entry Form"
	CategoryResults   = "Results"
	CategoryLogs      = "Logs"
)

// ------------------------ event model -----------------------

// Event represents a single competition or federation event.
type Event struct {
	ID         int    `json:"id"`                  // unique, assigned as max(existing)+1
	Date       string `json:"date"`                // calendar date, YYYY-MM-DD
	Title      string `json:"title"`               // event title
	Location   string `json:"location"`            // venue / city
	Discipline string `json:"discipline"`          // ISSF, NPA/PPC, or free text
	EntryForm  string `json:"entryForm,omitempty"` // entry form URL, may be empty
	Results    string `json:"results,omitempty"`   // results URL, may be empty
	Status     string `json:"status"`              // upcoming, completed, or free text
}

// ------------------------ result model -----------------------

// Result represents a published competition result or national log entry.
type Result struct {
	ID          int    `json:"id"`
	Event       string `json:"event"` // event name, free text
	Date        string `json:"date"`
	Discipline  string `json:"discipline"`
	Type        string `json:"type"`          // e.g. "Club Championship", free text
	PDF         string `json:"pdf,omitempty"` // results PDF URL, may be empty
	NationalLog bool   `json:"nationalLog"`   // national logs render in their own section
}

// ---------------------- document model ----------------------

// Document represents a downloadable federation document.
type Document struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"` // Rulebook, Entry Form, Results, Logs, or free text
	Discipline  string `json:"discipline"`
	Year        int    `json:"year"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// ---------------------- gallery model ----------------------

// GalleryImage represents one gallery photo. It has no identifier; its
// position in the sequence is its identity for lightbox navigation.
type GalleryImage struct {
	Src   string `json:"src"`
	Alt   string `json:"alt"`
	Title string `json:"title,omitempty"`
}

// ---------------------- JSON file wrappers ----------------------

// EventsFile matches the shape of events.json.
type EventsFile struct {
	Events []Event `json:"events"`
}

// ResultsFile matches the shape of results.json.
type ResultsFile struct {
	Results []Result `json:"results"`
}

// DocumentsFile matches the shape of documents.json.
type DocumentsFile struct {
	Documents []Document `json:"documents"`
}

// GalleryFile matches the shape of gallery.json.
type GalleryFile struct {
	Images []GalleryImage `json:"images"`
}

// ---------------------- identifier assignment ----------------------

// NextEventID returns max(existing)+1, the assignment rule for new records.
func NextEventID(events []Event) int {
	maxID := 0
	for _, e := range events {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID + 1
}

// NextResultID returns max(existing)+1 across the result collection.
func NextResultID(results []Result) int {
	maxID := 0
	for _, r := range results {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	return maxID + 1
}

// NextDocumentID returns max(existing)+1 across the document collection.
func NextDocumentID(docs []Document) int {
	maxID := 0
	for _, d := range docs {
		if d.ID > maxID {
			maxID = d.ID
		}
	}
	return maxID + 1
}
