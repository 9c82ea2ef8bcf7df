package screenshot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"

	"shotwiz/internal/config"
	"shotwiz/pkg/models"
)

const secondsPerDay = 86400

// Query narrows a Find call. Zero values mean "no filter".
type Query struct {
	MaxAgeDays int
	Limit      int
	// Require turns an empty result into ErrNoMatches.
	Require bool
}

// Finder discovers screenshots in the source directory.
type Finder struct {
	dir     string
	pattern string
	log     *zap.Logger
	now     func() time.Time
}

func NewFinder(cfg *config.Config, log *zap.Logger) *Finder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Finder{
		dir:     cfg.SourceDir,
		pattern: cfg.Pattern,
		log:     log,
		now:     time.Now,
	}
}

// CheckSource verifies that the source directory exists.
func (f *Finder) CheckSource() error {
	info, err := os.Stat(f.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w at %s", ErrSourceMissing, f.dir)
		}
		return &IOError{Op: "stat", Path: f.dir, Err: err}
	}
	if !info.IsDir() {
		return fmt.Errorf("%w at %s (not a directory)", ErrSourceMissing, f.dir)
	}
	return nil
}

// Find returns matching screenshots, newest first.
func (f *Finder) Find(q Query) ([]models.ScreenshotFile, error) {
	if err := f.CheckSource(); err != nil {
		return nil, err
	}

	files, err := scanDir(f.dir, models.RootSource, func(name string) bool {
		ok, _ := filepath.Match(f.pattern, name)
		return ok
	})
	if err != nil {
		return nil, err
	}
	f.log.Debug("scanned source directory",
		zap.String("dir", f.dir),
		zap.String("pattern", f.pattern),
		zap.Int("matches", len(files)),
	)

	files = filterByAge(files, q.MaxAgeDays, f.now())
	sortNewestFirst(files)
	if q.Limit > 0 && q.Limit < len(files) {
		files = files[:q.Limit]
	}

	if len(files) == 0 && q.Require {
		if q.MaxAgeDays > 0 {
			return nil, fmt.Errorf("%w in %s from the last %d days", ErrNoMatches, f.dir, q.MaxAgeDays)
		}
		return nil, fmt.Errorf("%w in %s", ErrNoMatches, f.dir)
	}
	return files, nil
}

// Latest returns the single most recent screenshot.
func (f *Finder) Latest(maxAgeDays int) (models.ScreenshotFile, error) {
	files, err := f.Find(Query{MaxAgeDays: maxAgeDays, Limit: 1, Require: true})
	if err != nil {
		return models.ScreenshotFile{}, err
	}
	return files[0], nil
}

// scanDir lists regular files directly inside dir whose names pass keep, in
// name order.
func scanDir(dir string, root models.Root, keep func(name string) bool) ([]models.ScreenshotFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &IOError{Op: "read dir", Path: dir, Err: err}
	}
	var files []models.ScreenshotFile
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !keep(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue // removed between ReadDir and Info
			}
			return nil, &IOError{Op: "stat", Path: filepath.Join(dir, entry.Name()), Err: err}
		}
		files = append(files, fileFromInfo(filepath.Join(dir, entry.Name()), info, root))
	}
	return files, nil
}

func fileFromInfo(path string, info fs.FileInfo, root models.Root) models.ScreenshotFile {
	return models.ScreenshotFile{
		Path:    path,
		Name:    info.Name(),
		ModTime: info.ModTime(),
		Size:    info.Size(),
		Root:    root,
	}
}

func filterByAge(files []models.ScreenshotFile, maxAgeDays int, now time.Time) []models.ScreenshotFile {
	if maxAgeDays <= 0 {
		return files
	}
	cutoff := now.Add(-time.Duration(maxAgeDays) * secondsPerDay * time.Second)
	kept := files[:0]
	for _, f := range files {
		if !f.ModTime.Before(cutoff) {
			kept = append(kept, f)
		}
	}
	return kept
}

func sortNewestFirst(files []models.ScreenshotFile) {
	sort.SliceStable(files, func(i, j int) bool {
		if !files[i].ModTime.Equal(files[j].ModTime) {
			return files[i].ModTime.After(files[j].ModTime)
		}
		return files[i].Path < files[j].Path
	})
}
