package models

import "time"

type ResizeRequest struct {
	Scale float64 `json:"scale" binding:"required,gt=0"`
}

type FolderRequest struct {
	Path  string  `json:"path" binding:"required"`
	Scale float64 `json:"scale" binding:"required,gt=0"`
}

type JobRequest struct {
	ImageURL string  `json:"image_url" binding:"required,url"`
	Scale    float64 `json:"scale" binding:"required,gt=0"`
}

// Variant describes one resized rendition of a source image.
type Variant struct {
	Method      string `json:"method"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	FileSize    int64  `json:"file_size"`
	Filename    string `json:"filename"`
	DownloadURL string `json:"download_url"`
	StorageURL  string `json:"storage_url,omitempty"`
}

// ResizeResult groups the four variants produced from one source image.
type ResizeResult struct {
	ID             string    `json:"id"`
	SourceFilename string    `json:"source_filename"`
	SourceWidth    int       `json:"source_width"`
	SourceHeight   int       `json:"source_height"`
	Scale          float64   `json:"scale"`
	Variants       []Variant `json:"variants"`
	ProcessedAt    time.Time `json:"processed_at"`
}

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
