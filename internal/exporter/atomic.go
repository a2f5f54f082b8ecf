package exporter

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"hrreport/internal/errors"
)

// withOutputLock holds an exclusive lock on path+".lock" while fn runs.
// A lock held by another process fails immediately.
func withOutputLock(path string, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create output directory", err).WithContext("path", path)
	}

	lockPath := path + ".lock"
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return errors.NewStorageError("failed to lock output", err).WithContext("lock", lockPath)
	}
	if !locked {
		return errors.NewStorageError("output is locked by another run", nil).WithContext("lock", lockPath)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lockPath)
	}()

	return fn()
}

// saveAtomically streams write into a temporary file next to path and
// renames it over path once everything has been written and synced.
func saveAtomically(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.NewStorageError("failed to create temporary output", err).WithContext("path", path)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := write(tmp); err != nil {
		return errors.NewStorageError("failed to write report", err).WithContext("path", path)
	}
	if err := tmp.Sync(); err != nil {
		return errors.NewStorageError("failed to flush report", err).WithContext("path", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.NewStorageError("failed to close report", err).WithContext("path", path)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return errors.NewStorageError("failed to set report permissions", err).WithContext("path", path)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.NewStorageError("failed to move report into place", err).WithContext("path", path)
	}
	committed = true
	return nil
}
