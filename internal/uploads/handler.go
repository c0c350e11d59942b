package uploads

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devnow-platform/onboarding-backend/internal/auth"
)

// Handler serves the multipart upload endpoint.
type Handler struct {
	store *Store
	repo  *FileRepository
}

func NewHandler(store *Store, repo *FileRepository) *Handler {
	return &Handler{store: store, repo: repo}
}

type uploadedFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// Upload accepts one or more files under the "files" field (or a single
// "file"). Everything is validated before anything is written, so one bad
// file rejects the whole batch.
func (h *Handler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid multipart form"})
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		headers = form.File["file"]
	}
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "no files provided"})
		return
	}

	for _, fh := range headers {
		if err := Validate(fh.Size, fh.Header.Get("Content-Type")); err != nil {
			if errors.Is(err, ErrFileTooLarge) || errors.Is(err, ErrUnsupportedType) {
				c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": fh.Filename + ": " + err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
			return
		}
	}

	userID := auth.UserDBID(c)
	var projectID *string
	if pid := strings.TrimSpace(c.PostForm("project_id")); pid != "" {
		projectID = &pid
	}

	results := make([]uploadedFile, 0, len(headers))
	for _, fh := range headers {
		uf, err := h.storeOne(c, userID, projectID, fh)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": fh.Filename + ": " + err.Error()})
			return
		}
		results = append(results, *uf)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "files": results})
}

func (h *Handler) storeOne(c *gin.Context, userID string, projectID *string, fh *multipart.FileHeader) (*uploadedFile, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	contentType := fh.Header.Get("Content-Type")
	key := ObjectKey(userID, fh.Filename)

	url, err := h.store.Put(c.Request.Context(), key, contentType, src, fh.Size)
	if err != nil {
		return nil, err
	}

	rec := &File{
		UserID:    userID,
		ProjectID: projectID,
		Name:      fh.Filename,
		ObjectKey: key,
		URL:       url,
		Size:      fh.Size,
		MimeType:  contentType,
	}
	if err := h.repo.Insert(c.Request.Context(), rec); err != nil {
		// Object is already in the bucket; the missing row is recoverable.
		log.Printf("record upload %s: %v", key, err)
		return nil, err
	}

	return &uploadedFile{Name: rec.Name, URL: rec.URL, Size: rec.Size, Type: rec.MimeType}, nil
}

// Register attaches the upload route to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/upload", h.Upload)
}
