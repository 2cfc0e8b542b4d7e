// Package storage provides durable storage of a single JSON-serializable
// value under a fixed file path. It is the persistence primitive under every
// manager: missing files yield the caller's default, malformed files are
// logged and replaced by the default, and saves go through a temp file plus
// rename so a concurrent reload never observes a partial write.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sulemanahsancui/quran-pak/internal/logger"
)

// Store persists one value of type T at a fixed path. It assumes a single
// authoritative writer process; no cross-process locking is provided.
type Store[T any] struct {
	path   string
	logger logger.Logger
}

func New[T any](path string, log logger.Logger) *Store[T] {
	return &Store[T]{path: path, logger: log}
}

// Path returns the backing file path.
func (s *Store[T]) Path() string { return s.path }

// Exists reports whether the backing file is present on disk.
func (s *Store[T]) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the stored value. A missing file returns def without error.
// A malformed or unreadable file is logged and also falls back to def:
// startup must never crash on a corrupt settings file.
func (s *Store[T]) Load(def T) T {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read state file, using defaults",
				logger.String("path", s.path),
				logger.Error(err))
		}
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		s.logger.Warn("malformed state file, using defaults",
			logger.String("path", s.path),
			logger.Error(err))
		return def
	}
	return v
}

// Save serializes v and atomically replaces the backing file. The value is
// written to a temp file in the same directory and renamed over the target,
// so readers see either the old or the new content, never a truncated file.
func (s *Store[T]) Save(v T) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

// Remove deletes the backing file. A missing file is not an error.
func (s *Store[T]) Remove() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove state file: %w", err)
	}
	return nil
}
