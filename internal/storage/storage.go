package storage

import (
	"addtest/internal/config"
)

// Storage persists generated files
type Storage interface {
	// Save writes content under name in the output directory and returns the full path.
	Save(name string, content []byte) (string, error)
}

// FileStorage writes files into the configured output directory.
type FileStorage struct {
	cfg *config.Config
}

// NewFileStorage returns a Storage rooted at the config's output directory.
func NewFileStorage(cfg *config.Config) *FileStorage {
	return &FileStorage{cfg: cfg}
}
