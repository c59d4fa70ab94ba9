package storage

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/freshify/internal/common"
)

// MaxImageBytes caps a decoded upload.
const MaxImageBytes = 10 << 20

// Image is a decoded upload.
type Image struct {
	ContentType string
	Ext         string
	Data        []byte
}

// DecodeImage accepts "data:<mime>;base64,<payload>" or bare base64.
// The content type of bare payloads is sniffed. Anything that is not an
// image is rejected with a validation error.
func DecodeImage(s string) (*Image, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, common.NewValidationError("image", "is empty")
	}

	contentType := ""
	payload := s
	if strings.HasPrefix(s, "data:") {
		meta, data, ok := strings.Cut(s, ",")
		if !ok || !strings.HasSuffix(meta, ";base64") {
			return nil, common.NewValidationError("image", "is not a base64 data URL")
		}
		contentType = strings.TrimSuffix(strings.TrimPrefix(meta, "data:"), ";base64")
		payload = data
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, common.NewValidationError("image", "is not valid base64")
	}
	if len(data) == 0 {
		return nil, common.NewValidationError("image", "is empty")
	}
	if len(data) > MaxImageBytes {
		return nil, common.NewValidationError("image", fmt.Sprintf("exceeds %d bytes", MaxImageBytes))
	}

	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, common.NewValidationError("image", "has unsupported type "+contentType)
	}

	return &Image{ContentType: contentType, Ext: extensionFor(contentType), Data: data}, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	if _, sub, ok := strings.Cut(contentType, "/"); ok {
		return "." + sub
	}
	return ""
}

// DataURL re-encodes the image for services that expect a data URL.
func (i *Image) DataURL() string {
	return "data:" + i.ContentType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// ScanKey returns the object key for a scan uploaded by owner at t.
func ScanKey(owner string, t time.Time, ext string) string {
	t = t.UTC()
	return fmt.Sprintf("scans/%s/%04d/%d/%d/%s%s", owner, t.Year(), int(t.Month()), t.Day(), uuid.NewString(), ext)
}
