// Package inspect reads image metadata for display. Failures never surface as
// Go errors; they are carried in ImageInfo.Error instead.
package inspect

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"shotwiz/pkg/models"
)

// ModifiedLayout formats modification times in ImageInfo and listings.
const ModifiedLayout = "2006-01-02 15:04:05"

// Inspect returns the metadata of the image at path.
func Inspect(path string) models.ImageInfo {
	info := models.ImageInfo{Path: path}

	f, err := os.Open(path)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		info.Error = err.Error()
		return info
	}
	if stat.IsDir() {
		info.Error = fmt.Sprintf("%s is a directory", path)
		return info
	}

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		info.Error = fmt.Sprintf("cannot identify image file %s: %v", path, err)
		return info
	}

	info.Width = cfg.Width
	info.Height = cfg.Height
	info.Dimensions = fmt.Sprintf("%dx%d", cfg.Width, cfg.Height)
	info.Format = strings.ToUpper(format)
	info.Mode = colorMode(cfg.ColorModel, format)
	if format == "png" {
		if mode, ok := pngMode(f); ok {
			info.Mode = mode
		}
	}
	info.SizeBytes = stat.Size()
	info.Size = fmt.Sprintf("%.1f KB", float64(stat.Size())/1024)
	info.Modified = stat.ModTime().Format(ModifiedLayout)

	if _, err := f.Seek(0, io.SeekStart); err == nil {
		info.Created = exifDateTime(f)
	}
	return info
}

// exifDateTime returns the EXIF DateTime tag (306) or "" when absent.
func exifDateTime(r io.Reader) string {
	x, err := exif.Decode(r)
	if err != nil {
		return ""
	}
	tag, err := x.Get(exif.DateTime)
	if err != nil {
		return ""
	}
	v, err := tag.StringVal()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(v)
}
