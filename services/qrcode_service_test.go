// file: services/qrcode_service_test.go
package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"sapf-site/services"
)

// TestGenerateEntryFormQR verifies a PNG comes back for a valid URL.
func TestGenerateEntryFormQR(t *testing.T) {
	png, err := services.GenerateEntryFormQR("https://example.org/entry.pdf", 256)
	assert.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG signature
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

// TestGenerateEntryFormQR_TooMuchData verifies oversized payloads error.
func TestGenerateEntryFormQR_TooMuchData(t *testing.T) {
	long := make([]byte, 5000)
	for i := range long {
		long[i] = 'a'
	}
	_, err := services.GenerateEntryFormQR(string(long), 256)
	assert.Error(t, err)
}
