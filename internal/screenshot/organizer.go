package screenshot

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"shotwiz/internal/config"
	"shotwiz/pkg/models"
)

// Recorder receives a Placement after each successful copy.
type Recorder interface {
	Save(p *models.Placement) error
}

// Organizer copies screenshots into the destination tree.
type Organizer struct {
	destRoot string
	log      *zap.Logger
	recorder Recorder
	now      func() time.Time
}

func NewOrganizer(cfg *config.Config, log *zap.Logger) *Organizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Organizer{
		destRoot: cfg.DestDir,
		log:      log,
		now:      time.Now,
	}
}

// WithRecorder attaches a history recorder. A nil recorder disables history.
func (o *Organizer) WithRecorder(r Recorder) *Organizer {
	o.recorder = r
	return o
}

// Place copies sourcePath to its computed destination and returns that path.
// The source is never modified.
func (o *Organizer) Place(sourcePath string, req models.OrganizeRequest) (string, error) {
	return o.place(sourcePath, req, "")
}

func (o *Organizer) place(sourcePath string, req models.OrganizeRequest, batchID string) (string, error) {
	req, err := ValidateRequest(req)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(o.destRoot, 0o755); err != nil {
		return "", &IOError{Op: "create directory", Path: o.destRoot, Err: err}
	}
	if req.Category != "" {
		dir := filepath.Join(o.destRoot, req.Category)
		if err := os.Mkdir(dir, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
			return "", &IOError{Op: "create directory", Path: dir, Err: err}
		}
	}

	dest := filepath.Join(o.destRoot, BuildName(req.BaseName, req.Category, req.Extension, o.now()))
	if _, err := os.Lstat(dest); err == nil {
		// Same base name within the same second; the earlier copy is replaced.
		o.log.Warn("destination exists and will be overwritten", zap.String("path", dest))
	}

	size, err := copyFile(sourcePath, dest)
	if err != nil {
		return "", err
	}
	o.log.Info("screenshot placed",
		zap.String("source", sourcePath),
		zap.String("destination", dest),
		zap.Int64("bytes", size),
	)

	if o.recorder != nil {
		rec := &models.Placement{
			BatchID:    batchID,
			SourcePath: sourcePath,
			DestPath:   dest,
			Category:   req.Category,
			SizeBytes:  size,
			PlacedAt:   o.now(),
		}
		if err := o.recorder.Save(rec); err != nil {
			o.log.Warn("failed to record placement", zap.String("destination", dest), zap.Error(err))
		}
	}
	return dest, nil
}

// copyFile copies content, permission bits and timestamps from src to dst.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, &IOError{Op: "open source", Path: src, Err: err}
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, &IOError{Op: "stat source", Path: src, Err: err}
	}
	if !info.Mode().IsRegular() {
		return 0, &IOError{Op: "open source", Path: src, Err: fmt.Errorf("not a regular file")}
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return 0, &IOError{Op: "create destination", Path: dst, Err: err}
	}
	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return n, &IOError{Op: "copy", Path: dst, Err: err}
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return n, &IOError{Op: "sync destination", Path: dst, Err: err}
	}
	if err := out.Close(); err != nil {
		return n, &IOError{Op: "close destination", Path: dst, Err: err}
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return n, &IOError{Op: "chmod", Path: dst, Err: err}
	}
	if err := os.Chtimes(dst, accessTime(src, info), info.ModTime()); err != nil {
		return n, &IOError{Op: "set times", Path: dst, Err: err}
	}
	return n, nil
}
