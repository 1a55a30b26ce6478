// file: services/fetcher_test.go
package services_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"sapf-site/services"
)

func TestFileFetcher_ReadsResource(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "events.json"), []byte(`{"events":[]}`), 0644))

	f := services.FileFetcher{Dir: dir}
	data, err := f.Fetch("events.json")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"events":[]}`, string(data))
}

func TestFileFetcher_MissingResource(t *testing.T) {
	f := services.FileFetcher{Dir: t.TempDir()}
	_, err := f.Fetch("events.json")
	assert.Error(t, err)
}

// A resource name carrying path components cannot escape the data directory.
func TestFileFetcher_StripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "secret.json"), []byte(`{}`), 0644))

	f := services.FileFetcher{Dir: dir}
	data, err := f.Fetch("../../" + filepath.Base(dir) + "/secret.json")
	assert.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	_, err = f.Fetch("../outside.json")
	assert.Error(t, err)
}

func TestNewFetcherFromEnv_DefaultsToFiles(t *testing.T) {
	t.Setenv("CONTENT_S3_BUCKET", "")
	t.Setenv("DATA_DIR", "/tmp/sapf-data")

	f := services.NewFetcherFromEnv()
	file, ok := f.(services.FileFetcher)
	assert.True(t, ok)
	assert.Equal(t, "/tmp/sapf-data", file.Dir)
}

func TestNewFetcherFromEnv_S3WhenBucketSet(t *testing.T) {
	t.Setenv("CONTENT_S3_BUCKET", "sapf-content")

	f := services.NewFetcherFromEnv()
	s3f, ok := f.(*services.S3Fetcher)
	assert.True(t, ok)
	assert.Equal(t, "sapf-content", s3f.Bucket)
}
