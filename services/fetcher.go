// Package services: services/fetcher.go
package services

import (
	"io"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"sapf-site/logger"
)

// Fetcher retrieves one named content resource (e.g. "events.json").
type Fetcher interface {
	Fetch(name string) ([]byte, error)
}

// ------------------- local file source -------------------

// FileFetcher reads content resources from a local data directory.
type FileFetcher struct {
	Dir string
}

// Fetch reads the named resource from the data directory.
func (f FileFetcher) Fetch(name string) ([]byte, error) {
	// Base strips any path components so a resource name can never escape the data dir.
	return os.ReadFile(filepath.Join(f.Dir, filepath.Base(name)))
}

// ------------------- S3 source -------------------

// S3Fetcher reads the same resources from an S3 bucket, for deployments
// where the content JSON is hosted rather than shipped with the binary.
type S3Fetcher struct {
	Bucket string
	svc    *s3.S3
}

// NewS3Fetcher builds a fetcher against the given bucket using the ambient
// AWS credentials chain.
func NewS3Fetcher(bucket string) *S3Fetcher {
	return &S3Fetcher{
		Bucket: bucket,
		svc:    s3.New(session.Must(session.NewSession())),
	}
}

// Fetch downloads the named object from the bucket.
func (f *S3Fetcher) Fetch(name string) ([]byte, error) {
	out, err := f.svc.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(f.Bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := out.Body.Close(); cerr != nil {
			logger.Warn.Printf("S3Fetcher: error closing body for %s: %v", name, cerr)
		}
	}()
	return io.ReadAll(out.Body)
}

// ------------------- environment selection -------------------

// NewFetcherFromEnv picks the content source: an S3 bucket when
// CONTENT_S3_BUCKET is set, otherwise the local data directory
// (DATA_DIR, default ./data).
func NewFetcherFromEnv() Fetcher {
	if bucket := os.Getenv("CONTENT_S3_BUCKET"); bucket != "" {
		logger.Info.Printf("NewFetcherFromEnv: serving content from s3://%s", bucket)
		return NewS3Fetcher(bucket)
	}
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	logger.Info.Printf("NewFetcherFromEnv: serving content from %s", dataDir)
	return FileFetcher{Dir: dataDir}
}
