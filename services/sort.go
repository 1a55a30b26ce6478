// Package services: services/sort.go
package services

import (
	"sort"
	"strings"
	"time"

	"sapf-site/models"
)

// ------------------- sort directions and columns -------------------

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Sortable results table columns.
const (
	ColumnEvent      = "event"
	ColumnDate       = "date"
	ColumnDiscipline = "discipline"
)

// parseDate parses a calendar date (time zone naive). An unparseable date
// yields the zero time, which sorts as the earliest possible value so the
// ordering stays total.
func parseDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ------------------- events ordering -------------------

// SortEventsDefault returns a new slice with the default events order:
// every "upcoming" event before every non-"upcoming" event, then ascending
// date within each bucket. The sort is stable, so equal keys keep their
// input order.
func SortEventsDefault(events []models.Event) []models.Event {
	out := make([]models.Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		iUp := out[i].Status == models.StatusUpcoming
		jUp := out[j].Status == models.StatusUpcoming
		if iUp != jUp {
			return iUp
		}
		return parseDate(out[i].Date).Before(parseDate(out[j].Date))
	})
	return out
}

// UpcomingEvents returns the soonest upcoming events, ascending by date,
// capped at limit. Used for the homepage summary.
func UpcomingEvents(events []models.Event, limit int) []models.Event {
	upcoming := FilterEvents(events, Filters{"status": models.StatusUpcoming})
	sort.SliceStable(upcoming, func(i, j int) bool {
		return parseDate(upcoming[i].Date).Before(parseDate(upcoming[j].Date))
	})
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// ------------------- results ordering -------------------

// LatestResults returns the most recent ordinary (non national log) results,
// descending by date, capped at limit. Used for the homepage summary.
func LatestResults(results []models.Result, limit int) []models.Result {
	_, regular := SplitNationalLogs(results)
	sort.SliceStable(regular, func(i, j int) bool {
		return parseDate(regular[j].Date).Before(parseDate(regular[i].Date))
	})
	if len(regular) > limit {
		regular = regular[:limit]
	}
	return regular
}

// SortNationalLogs returns a new slice of logs ordered newest first.
func SortNationalLogs(logs []models.Result) []models.Result {
	out := make([]models.Result, len(logs))
	copy(out, logs)
	sort.SliceStable(out, func(i, j int) bool {
		return parseDate(out[j].Date).Before(parseDate(out[i].Date))
	})
	return out
}

// SortResultsTable returns a new slice ordered by the given table column and
// direction. Date columns compare as calendar dates; string columns compare
// case-insensitively. Unknown columns fall back to the table default
// (date descending). The sort is stable.
func SortResultsTable(results []models.Result, column, direction string) []models.Result {
	if column != ColumnEvent && column != ColumnDate && column != ColumnDiscipline {
		column = ColumnDate
		direction = SortDesc
	}
	if direction != SortAsc && direction != SortDesc {
		direction = SortAsc
	}

	out := make([]models.Result, len(results))
	copy(out, results)
	less := func(i, j int) bool {
		switch column {
		case ColumnDate:
			return parseDate(out[i].Date).Before(parseDate(out[j].Date))
		case ColumnEvent:
			return strings.ToLower(out[i].Event) < strings.ToLower(out[j].Event)
		default:
			return strings.ToLower(out[i].Discipline) < strings.ToLower(out[j].Discipline)
		}
	}
	if direction == SortDesc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(out, less)
	return out
}

// NextDirection computes the direction a column link should request given
// the currently active column and direction: selecting the active column
// again flips its direction, selecting a different column resets to ascending.
func NextDirection(activeColumn, activeDirection, column string) string {
	if column == activeColumn {
		if activeDirection == SortAsc {
			return SortDesc
		}
		return SortAsc
	}
	return SortAsc
}

// ------------------- documents ordering -------------------

// SortDocumentsDefault returns a new slice with the default documents order:
// descending year, ties broken by ascending title (case-sensitive).
func SortDocumentsDefault(docs []models.Document) []models.Document {
	out := make([]models.Document, len(docs))
	copy(out, docs)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Title < out[j].Title
	})
	return out
}
