package screenshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"shotwiz/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// testConfig returns a config rooted in fresh temp directories. The source
// directory exists; the destination does not yet.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	base := t.TempDir()
	cfg := config.Default()
	cfg.SourceDir = filepath.Join(base, "Screenshots")
	cfg.DestDir = filepath.Join(base, "Misc")
	cfg.HistoryEnabled = false
	require.NoError(t, os.MkdirAll(cfg.SourceDir, 0o755))
	return &cfg
}

// writeFile creates path with content and sets its modification time.
func writeFile(t *testing.T, path, content string, mtime time.Time) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}
