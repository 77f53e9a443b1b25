package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SaveUploadedFile stores an uploaded file under destDir with a random name
// and returns the stored filename. The original name is discarded so clients
// cannot influence paths on disk.
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	storedName := uuid.New().String() + ext

	dst, err := os.Create(filepath.Join(destDir, storedName))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return storedName, nil
}

// GetFileURL maps a stored filename to its public URL.
func GetFileURL(storedName string) string {
	if storedName == "" {
		return ""
	}
	return "/uploads/" + storedName
}
