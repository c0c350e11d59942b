package uploads

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("accepts allowed types under the cap", func(t *testing.T) {
		for _, ct := range []string{
			"application/pdf",
			"image/png",
			"image/jpeg",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			"application/zip",
		} {
			assert.NoError(t, Validate(1024, ct), ct)
		}
	})

	t.Run("rejects oversized files", func(t *testing.T) {
		err := Validate(MaxFileSize+1, "application/pdf")
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("accepts a file exactly at the cap", func(t *testing.T) {
		assert.NoError(t, Validate(MaxFileSize, "application/pdf"))
	})

	t.Run("rejects types outside the allow-list", func(t *testing.T) {
		for _, ct := range []string{"application/x-msdownload", "text/html", "video/mp4", ""} {
			err := Validate(1024, ct)
			assert.ErrorIs(t, err, ErrUnsupportedType, ct)
		}
	})

	t.Run("ignores charset parameters and case", func(t *testing.T) {
		assert.NoError(t, Validate(1024, "Application/PDF"))
		assert.NoError(t, Validate(1024, "image/png; charset=binary"))
	})
}

func TestObjectKey(t *testing.T) {
	t.Run("scopes keys to the user and keeps the extension", func(t *testing.T) {
		key := ObjectKey("user-123", "Proposal Draft.PDF")
		assert.True(t, strings.HasPrefix(key, "user-123/"))
		assert.True(t, strings.HasSuffix(key, ".pdf"))
	})

	t.Run("same filename never collides", func(t *testing.T) {
		a := ObjectKey("user-123", "logo.png")
		b := ObjectKey("user-123", "logo.png")
		require.NotEqual(t, a, b)
	})

	t.Run("handles names without an extension", func(t *testing.T) {
		key := ObjectKey("user-123", "README")
		assert.True(t, strings.HasPrefix(key, "user-123/"))
		assert.False(t, strings.Contains(key, "."))
	})
}
