package histlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// sink serializes every writer targeting one canonical log file path.
// Independent logger lineages pointed at the same path share one sink,
// so the append+rotate decision is always made under a single lock.
// The file handle and running size are cached between writes.
type sink struct {
	mu   sync.Mutex
	path string // canonical absolute path
	file *os.File
	size int64
	buf  []byte
}

// sinks maps canonical path -> *sink. Sinks live for the process
// lifetime; the log file is a process-wide shared resource, not part
// of any logger value's identity.
var sinks sync.Map

// sinkFor returns the shared sink for path, creating it on first use.
func sinkFor(path string) (*sink, error) {
	canonical, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return nil, ioErrorf("cannot resolve log file path %q: %w", path, err)
	}
	if s, ok := sinks.Load(canonical); ok {
		return s.(*sink), nil
	}
	s, _ := sinks.LoadOrStore(canonical, &sink{path: canonical})
	return s.(*sink), nil
}

// write appends one formatted line and rotates once the file size
// reaches cfg.MaxFileSize. The threshold check runs after the append,
// so the active file can exceed the limit by at most one line.
func (s *sink) write(e Entry, cfg *Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureOpen(cfg.CreateDirs); err != nil {
		return err
	}

	s.buf = appendEntry(s.buf[:0], e, cfg.TimestampFormat)
	s.buf = append(s.buf, '\n')

	n, err := s.file.Write(s.buf)
	s.size += int64(n)
	if err != nil {
		return ioErrorf("failed to append to log file %q: %w", s.path, err)
	}

	if s.size >= cfg.MaxFileSize {
		return s.rotate()
	}
	return nil
}

// ensureOpen lazily opens the active log file, creating it (and its
// parent directory when createDirs is set) if absent. The running size
// is seeded from the existing file so pre-existing content counts
// toward the rotation threshold.
func (s *sink) ensureOpen(createDirs bool) error {
	if s.file != nil {
		return nil
	}

	if createDirs {
		if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
			return ioErrorf("failed to create log directory for %q: %w", s.path, err)
		}
	}

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return ioErrorf("failed to open/create log file %q: %w", s.path, err)
	}

	fi, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return ioErrorf("failed to stat log file %q: %w", s.path, err)
	}

	s.file = file
	s.size = fi.Size()
	return nil
}

// rotate implements the rename-on-rotate strategy: close the active
// file, rename it to a timestamped archive in the same directory, and
// reopen a fresh file at the static path. The line that triggered
// rotation is already durable; a rename failure leaves it in place
// under the original name and surfaces as an I/O error.
func (s *sink) rotate() error {
	if err := s.file.Close(); err != nil {
		return ioErrorf("failed to close log file %q before rotation: %w", s.path, err)
	}
	s.file = nil
	s.size = 0

	archivePath := archiveName(s.path, time.Now())
	if err := os.Rename(s.path, archivePath); err != nil {
		return ioErrorf("failed to rename log file %q to %q: %w", s.path, archivePath, err)
	}

	// Directory is known to exist at this point
	return s.ensureOpen(false)
}

// archiveName creates a timestamped filename for archived logs during
// rotation: <base>_<YYMMDD_HHMMSS>_<nano><ext>, alongside the active
// file. Nanoseconds keep same-second rotations from colliding.
func archiveName(path string, timestamp time.Time) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	tsFormat := timestamp.Format("060102_150405")
	nano := timestamp.Nanosecond()

	return filepath.Join(dir, fmt.Sprintf("%s_%s_%d%s", name, tsFormat, nano, ext))
}

// sync flushes the active file's buffers to disk.
func (s *sink) sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}
	if err := s.file.Sync(); err != nil {
		return ioErrorf("failed to sync log file %q: %w", s.path, err)
	}
	return nil
}
