package services

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"time"

	"image-transcriber/internal/models"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageService opens and decodes images for display
type ImageService struct{}

// NewImageService creates a new image service
func NewImageService() *ImageService {
	return &ImageService{}
}

// LoadImage opens and decodes the image at path. Every failure, whether the file
// is missing, unreadable or not a supported format, is returned as a
// *models.DecodeError.
func (is *ImageService) LoadImage(path string) (*models.ImageData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &models.DecodeError{Path: path, Err: err}
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, &models.DecodeError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &models.DecodeError{Path: path, Err: fmt.Errorf("is a directory")}
	}

	img, format, err := image.Decode(bufio.NewReader(file))
	if err != nil {
		return nil, &models.DecodeError{Path: path, Err: fmt.Errorf("failed to decode image: %w", err)}
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, &models.DecodeError{Path: path, Err: fmt.Errorf("image has no pixels")}
	}

	return &models.ImageData{
		Path:     path,
		Image:    img,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Format:   format,
		FileSize: info.Size(),
		LoadTime: time.Now(),
	}, nil
}

// Decode satisfies display.Decoder by returning only the decoded pixels
func (is *ImageService) Decode(path string) (image.Image, error) {
	data, err := is.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return data.Image, nil
}
