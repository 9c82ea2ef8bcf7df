package screenshot

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"shotwiz/internal/config"
	"shotwiz/pkg/models"
)

// imageExtensions are the destination-tree files that List reports.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// Catalog answers listing and search queries across both trees.
type Catalog struct {
	sourceDir string
	destDir   string
	pattern   string
	log       *zap.Logger
	now       func() time.Time
}

func NewCatalog(cfg *config.Config, log *zap.Logger) *Catalog {
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{
		sourceDir: cfg.SourceDir,
		destDir:   cfg.DestDir,
		pattern:   cfg.Pattern,
		log:       log,
		now:       time.Now,
	}
}

// Search returns files whose names contain keyword, ignoring case. Source
// directory entries come first, then the destination tree in walk order.
// Destination files match on their path below the destination root, so a
// category directory name matches every file inside it.
func (c *Catalog) Search(keyword string) ([]models.ScreenshotFile, error) {
	fold := cases.Fold()
	needle := fold.String(keyword)
	match := func(name string) bool {
		return strings.Contains(fold.String(name), needle)
	}

	results, err := c.scanSource(match)
	if err != nil {
		return nil, err
	}
	dest, err := c.walkDest(match)
	if err != nil {
		return nil, err
	}
	return append(results, dest...), nil
}

// List returns pattern-matching source files and image files from the
// destination tree, newest first.
func (c *Catalog) List(maxAgeDays int) ([]models.ScreenshotFile, error) {
	files, err := c.scanSource(func(name string) bool {
		ok, _ := filepath.Match(c.pattern, name)
		return ok
	})
	if err != nil {
		return nil, err
	}
	dest, err := c.walkDest(func(rel string) bool {
		return imageExtensions[strings.ToLower(filepath.Ext(rel))]
	})
	if err != nil {
		return nil, err
	}
	files = append(files, dest...)
	files = filterByAge(files, maxAgeDays, c.now())
	sortNewestFirst(files)
	return files, nil
}

func (c *Catalog) scanSource(keep func(string) bool) ([]models.ScreenshotFile, error) {
	if !dirExists(c.sourceDir) {
		c.log.Debug("source directory missing, skipping", zap.String("dir", c.sourceDir))
		return nil, nil
	}
	return scanDir(c.sourceDir, models.RootSource, keep)
}

// walkDest collects regular files below the destination root; keep receives
// each file's slash-separated path relative to that root.
func (c *Catalog) walkDest(keep func(string) bool) ([]models.ScreenshotFile, error) {
	if !dirExists(c.destDir) {
		c.log.Debug("destination directory missing, skipping", zap.String("dir", c.destDir))
		return nil, nil
	}
	var files []models.ScreenshotFile
	err := filepath.WalkDir(c.destDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrPermission) && path != c.destDir {
				c.log.Warn("skipping unreadable path", zap.String("path", path), zap.Error(err))
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			return &IOError{Op: "walk", Path: path, Err: err}
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(c.destDir, path)
		if err != nil {
			return &IOError{Op: "walk", Path: path, Err: err}
		}
		if !keep(filepath.ToSlash(rel)) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return &IOError{Op: "stat", Path: path, Err: err}
		}
		files = append(files, fileFromInfo(path, info, models.RootDestination))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
