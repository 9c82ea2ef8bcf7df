package models

import "time"

// Root identifies which tree a file was discovered in.
type Root string

const (
	RootSource      Root = "source"
	RootDestination Root = "destination"
)

// ScreenshotFile is a file discovered on disk for the current invocation.
type ScreenshotFile struct {
	Path    string    `json:"path"`
	Name    string    `json:"name"`
	ModTime time.Time `json:"modified"`
	Size    int64     `json:"size"`
	Root    Root      `json:"root"`
}

// SizeKB returns the size in kilobytes (1024 bytes).
func (f ScreenshotFile) SizeKB() float64 {
	return float64(f.Size) / 1024
}

type OrganizeRequest struct {
	BaseName  string `json:"base_name"`
	Category  string `json:"category,omitempty"`
	Extension string `json:"extension"`
}

// ImageInfo is the result of inspecting a file. When Error is set the image
// fields are empty and must not be used.
type ImageInfo struct {
	Path       string `json:"path"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Dimensions string `json:"dimensions,omitempty"`
	Format     string `json:"format,omitempty"`
	Mode       string `json:"mode,omitempty"`
	Size       string `json:"size,omitempty"`
	SizeBytes  int64  `json:"size_bytes,omitempty"`
	Modified   string `json:"modified,omitempty"`
	Created    string `json:"created,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (i ImageInfo) OK() bool {
	return i.Error == ""
}

// Placement is a history record for one completed copy.
type Placement struct {
	ID         int64     `json:"id"` // Database ID
	BatchID    string    `json:"batch_id,omitempty"`
	SourcePath string    `json:"source_path"`
	DestPath   string    `json:"dest_path"`
	Category   string    `json:"category,omitempty"`
	SizeBytes  int64     `json:"size_bytes"`
	PlacedAt   time.Time `json:"placed_at"`
}
