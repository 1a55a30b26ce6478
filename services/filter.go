// Package services: services/filter.go
package services

import (
	"sapf-site/models"
)

// FilterAll is the sentinel meaning "no restriction on this field".
const FilterAll = "all"

// Filters maps a field name to its accepted value. A missing field, an empty
// value, and FilterAll all mean the field is unrestricted. A record matches
// iff it satisfies every active field (logical AND).
type Filters map[string]string

// Active reports whether the given field actually restricts the result.
func (f Filters) Active(field string) bool {
	v, ok := f[field]
	return ok && v != "" && v != FilterAll
}

// match checks one field of one record against the filter set.
func (f Filters) match(field, value string) bool {
	if !f.Active(field) {
		return true
	}
	return f[field] == value
}

// FilterEvents returns the order-preserving subsequence of events matching
// the discipline and status filters. An unmatched value yields an empty
// slice, never an error.
func FilterEvents(events []models.Event, f Filters) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if f.match("discipline", e.Discipline) && f.match("status", e.Status) {
			out = append(out, e)
		}
	}
	return out
}

// FilterResults returns the subsequence of results matching the discipline filter.
func FilterResults(results []models.Result, f Filters) []models.Result {
	out := make([]models.Result, 0, len(results))
	for _, r := range results {
		if f.match("discipline", r.Discipline) {
			out = append(out, r)
		}
	}
	return out
}

// FilterDocuments returns the subsequence of documents matching the category
// and discipline filters.
func FilterDocuments(docs []models.Document, f Filters) []models.Document {
	out := make([]models.Document, 0, len(docs))
	for _, d := range docs {
		if f.match("category", d.Category) && f.match("discipline", d.Discipline) {
			out = append(out, d)
		}
	}
	return out
}

// SplitNationalLogs partitions results into national logs and ordinary
// results, preserving input order within each partition.
func SplitNationalLogs(results []models.Result) (logs, regular []models.Result) {
	logs = make([]models.Result, 0, len(results))
	regular = make([]models.Result, 0, len(results))
	for _, r := range results {
		if r.NationalLog {
			logs = append(logs, r)
		} else {
			regular = append(regular, r)
		}
	}
	return logs, regular
}
