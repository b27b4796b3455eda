// controllers/upload.go - shared multipart upload handling
package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"charity-foundation-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Logical storage buckets. Files are stored as-is under UPLOAD_PATH; no
// resizing or format conversion happens here.
const (
	bucketFoundation    = "foundation"
	bucketNews          = "news"
	bucketGoals         = "goals"
	bucketExpenseDocs   = "expense_docs"
	bucketExpensePhotos = "expense_photos"
)

const maxUploadSize = 10 * 1024 * 1024

var (
	errFileTypeNotAllowed = errors.New("file type not allowed")
	errFileTooLarge       = errors.New("file size exceeds 10MB limit")
)

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var documentTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"image/jpeg": true,
	"image/png":  true,
}

func uploadRoot() string {
	root := os.Getenv("UPLOAD_PATH")
	if root == "" {
		root = "./uploads"
	}
	return root
}

// saveUpload validates and stores one uploaded file under its bucket and
// returns the stored path. File names get a uuid suffix so re-uploads of
// the same title never collide.
func saveUpload(c *gin.Context, header *multipart.FileHeader, bucket string, allowed map[string]bool) (string, error) {
	contentType := header.Header.Get("Content-Type")
	if !allowed[contentType] {
		return "", errFileTypeNotAllowed
	}
	if header.Size > maxUploadSize {
		return "", errFileTooLarge
	}

	dir := filepath.Join(uploadRoot(), bucket)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := filepath.Ext(header.Filename)
	base := utils.SanitizeFilename(strings.TrimSuffix(header.Filename, ext))
	filename := fmt.Sprintf("%s_%s%s", base, uuid.New().String()[:8], ext)
	path := filepath.Join(dir, filename)

	if err := c.SaveUploadedFile(header, path); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	return path, nil
}

// removeStoredFile deletes a stored upload, tolerating files already gone.
func removeStoredFile(path string) {
	if path == "" {
		return
	}
	_ = os.Remove(path)
}
