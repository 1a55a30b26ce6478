// file: models/content_test.go
package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"sapf-site/models"
)

// New identifiers are max(existing)+1, independent of ordering or gaps.
func TestNextEventID(t *testing.T) {
	assert.Equal(t, 1, models.NextEventID(nil))
	assert.Equal(t, 8, models.NextEventID([]models.Event{{ID: 3}, {ID: 7}, {ID: 1}}))
	// a gap does not get reused
	assert.Equal(t, 11, models.NextEventID([]models.Event{{ID: 10}, {ID: 2}}))
}

func TestNextResultID(t *testing.T) {
	assert.Equal(t, 1, models.NextResultID(nil))
	assert.Equal(t, 5, models.NextResultID([]models.Result{{ID: 4}, {ID: 2}}))
}

func TestNextDocumentID(t *testing.T) {
	assert.Equal(t, 1, models.NextDocumentID(nil))
	assert.Equal(t, 3, models.NextDocumentID([]models.Document{{ID: 2}}))
}

// The wrapper types match the on-disk JSON shape, including the camelCase
// entryForm and nationalLog keys.
func TestEventsFile_JSONShape(t *testing.T) {
	raw := `{"events":[{"id":1,"date":"2026-03-14","title":"Nationals","location":"Pretoria",
		"discipline":"ISSF","entryForm":"/e.pdf","results":"","status":"upcoming"}]}`

	var f models.EventsFile
	assert.NoError(t, json.Unmarshal([]byte(raw), &f))
	assert.Len(t, f.Events, 1)
	assert.Equal(t, "/e.pdf", f.Events[0].EntryForm)
	assert.Equal(t, "upcoming", f.Events[0].Status)
}

func TestResultsFile_JSONShape(t *testing.T) {
	raw := `{"results":[{"id":1,"event":"Nationals","date":"2025-09-06","discipline":"ISSF",
		"type":"Final Results","pdf":"/r.pdf","nationalLog":true}]}`

	var f models.ResultsFile
	assert.NoError(t, json.Unmarshal([]byte(raw), &f))
	assert.True(t, f.Results[0].NationalLog)
	assert.Equal(t, "Final Results", f.Results[0].Type)
}
