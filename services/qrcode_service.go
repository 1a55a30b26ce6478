// services/qrcode_service.go
package services

import (
	"github.com/skip2/go-qrcode"
)

// GenerateEntryFormQR creates a PNG QR code pointing at an event's entry
// form, so the link can be printed on posters and scanned at the range.
func GenerateEntryFormQR(url string, size int) ([]byte, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png, nil
}
