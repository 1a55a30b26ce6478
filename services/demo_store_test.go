// file: services/demo_store_test.go
package services_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"sapf-site/models"
	"sapf-site/services"
)

func TestDemoStore_StartsInactive(t *testing.T) {
	store := services.NewDemoStore(t.TempDir())
	assert.False(t, store.Active())
	assert.Empty(t, store.Overrides().Events)
}

// Saving a collection persists it and flips demo mode on.
func TestDemoStore_SaveEvents(t *testing.T) {
	store := services.NewDemoStore(t.TempDir())
	events := []models.Event{{ID: 1, Title: "Nationals"}}

	assert.NoError(t, store.SaveEvents(events))
	assert.True(t, store.Active())
	assert.Equal(t, events, store.Overrides().Events)
}

// Saves to different collections accumulate in the same override set.
func TestDemoStore_SavesAccumulate(t *testing.T) {
	store := services.NewDemoStore(t.TempDir())

	assert.NoError(t, store.SaveEvents([]models.Event{{ID: 1}}))
	assert.NoError(t, store.SaveResults([]models.Result{{ID: 2}}))
	assert.NoError(t, store.SaveDocuments([]models.Document{{ID: 3}}))

	o := store.Overrides()
	assert.True(t, o.Active)
	assert.Len(t, o.Events, 1)
	assert.Len(t, o.Results, 1)
	assert.Len(t, o.Documents, 1)
}

// A second save of the same collection replaces it (last writer wins).
func TestDemoStore_LastWriterWins(t *testing.T) {
	store := services.NewDemoStore(t.TempDir())

	assert.NoError(t, store.SaveEvents([]models.Event{{ID: 1}}))
	assert.NoError(t, store.SaveEvents([]models.Event{{ID: 2}, {ID: 3}}))

	events := store.Overrides().Events
	assert.Len(t, events, 2)
	assert.Equal(t, 2, events[0].ID)
}

func TestDemoStore_Reset(t *testing.T) {
	store := services.NewDemoStore(t.TempDir())
	assert.NoError(t, store.SaveEvents([]models.Event{{ID: 1}}))

	assert.NoError(t, store.Reset())
	assert.False(t, store.Active())
	assert.Empty(t, store.Overrides().Events)

	// resetting an already-empty store is fine
	assert.NoError(t, store.Reset())
}

// A corrupt override file is ignored rather than erroring.
func TestDemoStore_CorruptFileIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo-store.json")
	assert.NoError(t, os.WriteFile(path, []byte("not json {"), 0600))

	store := services.NewDemoStore(dir)
	assert.False(t, store.Active())
}

// Overrides survive across store instances pointed at the same directory.
func TestDemoStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	first := services.NewDemoStore(dir)
	assert.NoError(t, first.SaveEvents([]models.Event{{ID: 1, Title: "Persisted"}}))

	second := services.NewDemoStore(dir)
	assert.True(t, second.Active())
	assert.Equal(t, "Persisted", second.Overrides().Events[0].Title)
}
