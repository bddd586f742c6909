package services

import (
	"fmt"
	"io/fs"
	"os"

	"image-transcriber/internal/models"
)

// SidecarStore keeps transcriptions as plain text files next to their images
type SidecarStore struct {
	perm fs.FileMode
}

// NewSidecarStore creates a store that writes sidecar files with mode 0644
func NewSidecarStore() *SidecarStore {
	return &SidecarStore{perm: 0o644}
}

// Exists reports whether the image has a transcription file
func (s *SidecarStore) Exists(imagePath string) bool {
	_, err := os.Stat(models.SidecarPath(imagePath))
	return err == nil
}

// Write replaces the image's transcription file with content
func (s *SidecarStore) Write(imagePath, content string) error {
	path := models.SidecarPath(imagePath)
	if err := os.WriteFile(path, []byte(content), s.perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
