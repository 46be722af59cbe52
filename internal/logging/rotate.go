package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// RotationConfig controls size-based rotation of the log file.
type RotationConfig struct {
	// MaxSizeMB is the size at which the active file is rotated. Zero disables rotation.
	MaxSizeMB int
	// MaxBackups is the number of rotated files kept next to the active file.
	MaxBackups int
	// Compress gzips rotated files.
	Compress bool
}

// DefaultRotationConfig returns the rotation settings used when the config
// file does not override them.
func DefaultRotationConfig() RotationConfig {
	return RotationConfig{MaxSizeMB: 5, MaxBackups: 2, Compress: true}
}

// RotatingWriter is an io.WriteCloser that rolls its file over to
// path.1, path.2, ... (or path.1.gz with compression) once the size limit
// would be exceeded by the next write.
type RotatingWriter struct {
	mu   sync.Mutex
	path string
	cfg  RotationConfig
	file *os.File
	size int64
}

// NewRotatingWriter opens (or creates) path for appending.
func NewRotatingWriter(path string, cfg RotationConfig) (*RotatingWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	w := &RotatingWriter{path: path, cfg: cfg}
	if err := w.open(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *RotatingWriter) open() error {
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}
	w.file = f
	w.size = info.Size()
	return nil
}

func (w *RotatingWriter) limit() int64 {
	return int64(w.cfg.MaxSizeMB) * 1024 * 1024
}

// Write appends p, rotating first when p would push the file past the limit.
func (w *RotatingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return 0, os.ErrClosed
	}
	if limit := w.limit(); limit > 0 && w.size > 0 && w.size+int64(len(p)) > limit {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}
	n, err := w.file.Write(p)
	w.size += int64(n)
	return n, err
}

func (w *RotatingWriter) rotate() error {
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file for rotation: %w", err)
	}
	w.file = nil

	if w.cfg.MaxBackups <= 0 {
		if err := os.Remove(w.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to truncate log file: %w", err)
		}
		return w.open()
	}

	// Shift path.N-1 -> path.N, dropping the oldest.
	_ = os.Remove(w.backup(w.cfg.MaxBackups))
	for i := w.cfg.MaxBackups - 1; i >= 1; i-- {
		if _, err := os.Stat(w.backup(i)); err == nil {
			_ = os.Rename(w.backup(i), w.backup(i+1))
		}
	}

	first := fmt.Sprintf("%s.1", w.path)
	if err := os.Rename(w.path, first); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}
	if w.cfg.Compress {
		if err := gzipFile(first); err != nil {
			return err
		}
	}
	return w.open()
}

// backup returns the path of the i-th backup as it exists on disk.
func (w *RotatingWriter) backup(i int) string {
	p := fmt.Sprintf("%s.%d", w.path, i)
	if w.cfg.Compress {
		p += ".gz"
	}
	return p
}

func gzipFile(path string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open rotated log: %w", err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.Create(path + ".gz")
	if err != nil {
		return fmt.Errorf("failed to create compressed log: %w", err)
	}
	zw := gzip.NewWriter(dst)
	if _, err := io.Copy(zw, src); err != nil {
		_ = zw.Close()
		_ = dst.Close()
		return fmt.Errorf("failed to compress rotated log: %w", err)
	}
	if err := zw.Close(); err != nil {
		_ = dst.Close()
		return fmt.Errorf("failed to compress rotated log: %w", err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("failed to compress rotated log: %w", err)
	}
	return os.Remove(path)
}

// Size returns the number of bytes in the active file.
func (w *RotatingWriter) Size() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

// Path returns the active file path.
func (w *RotatingWriter) Path() string {
	return w.path
}

// Close syncs and closes the active file.
func (w *RotatingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	if err := w.file.Sync(); err != nil {
		_ = w.file.Close()
		w.file = nil
		return fmt.Errorf("failed to sync log file: %w", err)
	}
	err := w.file.Close()
	w.file = nil
	return err
}
