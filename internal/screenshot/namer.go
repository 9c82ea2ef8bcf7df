package screenshot

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"shotwiz/internal/config"
	"shotwiz/pkg/models"
)

// TimestampLayout is the suffix appended to every organized file name.
const TimestampLayout = "20060102_150405"

// BuildName returns the destination path relative to the destination root.
func BuildName(baseName, category, extension string, now time.Time) string {
	name := fmt.Sprintf("%s_%s.%s", baseName, now.Format(TimestampLayout), extension)
	if category != "" {
		return filepath.Join(category, name)
	}
	return name
}

// ValidateRequest checks that the request cannot escape the destination tree
// and returns it with the extension normalized.
func ValidateRequest(req models.OrganizeRequest) (models.OrganizeRequest, error) {
	if err := checkElement("name", req.BaseName); err != nil {
		return req, err
	}
	if req.Category != "" {
		if err := checkElement("location", req.Category); err != nil {
			return req, err
		}
	}

	ext := strings.TrimPrefix(strings.TrimSpace(req.Extension), ".")
	if ext == "" {
		ext = config.DefaultExtension
	}
	if strings.ContainsAny(ext, `/\.`) {
		return req, fmt.Errorf("%w: extension %q must be a bare suffix", ErrInvalidName, req.Extension)
	}
	req.Extension = ext
	return req, nil
}

func checkElement(field, value string) error {
	switch {
	case value == "":
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidName, field)
	case value == "." || value == "..":
		return fmt.Errorf("%w: %s %q", ErrInvalidName, field, value)
	case strings.ContainsAny(value, `/\`) || strings.ContainsRune(value, 0):
		return fmt.Errorf("%w: %s %q must not contain path separators", ErrInvalidName, field, value)
	}
	return nil
}
