package uploads

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxFileSize is the per-file upload cap.
const MaxFileSize = 10 << 20 // 10MB

var allowedTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"image/png":                    {},
	"image/jpeg":                   {},
	"image/gif":                    {},
	"application/zip":              {},
	"application/x-zip-compressed": {},
}

var (
	ErrFileTooLarge    = errors.New("file exceeds the 10MB limit")
	ErrUnsupportedType = errors.New("file type not allowed")
)

// Validate checks one upload against the size cap and MIME allow-list.
func Validate(size int64, contentType string) error {
	if size > MaxFileSize {
		return ErrFileTooLarge
	}
	mime := contentType
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	if _, ok := allowedTypes[strings.TrimSpace(strings.ToLower(mime))]; !ok {
		return ErrUnsupportedType
	}
	return nil
}

// ObjectKey builds a user-scoped storage key that cannot collide across
// concurrent uploads of the same filename.
func ObjectKey(userID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%d-%s%s", userID, time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}
