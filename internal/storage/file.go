package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"addtest/internal/domain"
)

// Save writes content through a temp file that is renamed into place, so the
// target is either untouched or complete. An existing file is replaced and
// keeps its permissions. name must be a bare file name.
func (s *FileStorage) Save(name string, content []byte) (string, error) {
	dir := s.cfg.GetOutputDir()
	path := s.cfg.GetOutputPath(name)
	if !isBareName(name) {
		return "", &domain.WriteError{Path: path, Err: fmt.Errorf("file name %q must not contain a path", name)}
	}
	if err := writeAtomic(dir, name, content); err != nil {
		return "", &domain.WriteError{Path: path, Err: err}
	}
	return path, nil
}

func isBareName(name string) bool {
	return name != "" && name != "." && name != ".." && filepath.Base(name) == name && filepath.Clean(name) == name
}

func writeAtomic(dir, name string, content []byte) (err error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, name)

	tmp, err := createTemp(dir, name)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	// Truncating in place would have kept the old mode
	if info, statErr := os.Stat(path); statErr == nil && info.Mode().IsRegular() {
		if err := tmp.Chmod(info.Mode().Perm()); err != nil {
			tmp.Close()
			return fmt.Errorf("chmod temp file: %w", err)
		}
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

// createTemp opens a fresh file next to the target. Unlike os.CreateTemp it
// asks for 0666, so the umask decides the final mode.
func createTemp(dir, name string) (*os.File, error) {
	for range 10000 {
		tmpPath := filepath.Join(dir, "."+name+"."+strconv.FormatUint(rand.Uint64(), 36)+".tmp")
		f, err := os.OpenFile(tmpPath, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return f, err
	}
	return nil, fmt.Errorf("no unused temp name in %s", dir)
}
