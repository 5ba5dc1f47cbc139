// Package fsutil is the file system port used by the config store.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FS is the small set of file operations wez-bits needs.
type FS interface {
	MkdirAll(path string) error
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	Exists(path string) (bool, error)
	Remove(path string) error
}

// OS implements FS on the real file system.
type OS struct{}

func (OS) MkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}

func (OS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile replaces path atomically through a temp file in the same directory.
func (OS) WriteFile(path string, data []byte) error {
	tempFile, err := os.CreateTemp(filepath.Dir(path), ".wez-bits-*")
	if err != nil {
		return err
	}
	defer func() {
		tempFile.Close()
		os.Remove(tempFile.Name())
	}()

	if _, err := tempFile.Write(data); err != nil {
		return err
	}
	if err := tempFile.Sync(); err != nil {
		return err
	}
	if err := tempFile.Close(); err != nil {
		return err
	}
	if err := os.Rename(tempFile.Name(), path); err != nil {
		return err
	}
	return os.Chmod(path, 0o644)
}

func (OS) Exists(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (OS) Remove(path string) error {
	return os.Remove(path)
}
