package models

import (
	"image"
	"time"
)

// ImageData is a decoded image together with the facts gathered while loading it
type ImageData struct {
	Path     string
	Image    image.Image
	Width    int
	Height   int
	Format   string
	FileSize int64
	LoadTime time.Time
}
