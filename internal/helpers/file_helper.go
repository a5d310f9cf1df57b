package helpers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const MaxUploadBytes = 50 * 1024 * 1024

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename strips any path components and reduces the name to a safe
// character set. Returns "" when nothing usable remains.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" || name == "." || name == ".." {
		return ""
	}
	return name
}

var videoExtensions = map[string]bool{
	".mp4":  true,
	".webm": true,
	".mov":  true,
}

// MediaTypeForFilename classifies by extension; anything that is not a known
// video container counts as an image.
func MediaTypeForFilename(name string) string {
	if videoExtensions[strings.ToLower(filepath.Ext(name))] {
		return "video"
	}
	return "image"
}

// SaveUserUpload writes an uploaded file under <baseDir>/<userID>/ and
// returns the filename actually used. Identically named uploads from the same
// user overwrite each other (last write wins).
func SaveUserUpload(c *gin.Context, fileHeader *multipart.FileHeader, baseDir string, userID uint) (string, error) {
	if fileHeader.Size > MaxUploadBytes {
		return "", fmt.Errorf("file size exceeds maximum limit of %d MB", MaxUploadBytes/(1024*1024))
	}

	filename := SanitizeFilename(fileHeader.Filename)
	if filename == "" {
		// Nothing survived sanitizing; keep the extension so the media
		// type is still derivable.
		filename = uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	}

	userDir := filepath.Join(baseDir, fmt.Sprintf("%d", userID))
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return "", err
	}

	if err := c.SaveUploadedFile(fileHeader, filepath.Join(userDir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}
