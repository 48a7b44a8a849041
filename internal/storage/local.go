package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ImportsDir is the sub directory holding archived import files
const ImportsDir = "imports"

// ErrFileTooLarge is returned when an upload exceeds MaxFileSize
var ErrFileTooLarge = errors.New("arquivo excede o tamanho máximo de 10 MB")

// MaxFileSize returns the maximum allowed file size (10MB)
func MaxFileSize() int64 {
	return 10 * 1024 * 1024
}

// LocalStorage handles file storage on the local filesystem
type LocalStorage struct {
	basePath string
	now      func() time.Time
}

// NewLocalStorage creates a new local storage instance
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath, now: time.Now}, nil
}

// Save copies r into subDir/yyyy/mm under a unique name keeping the
// extension of filename, and returns the relative path
func (s *LocalStorage) Save(r io.Reader, filename, subDir string) (string, error) {
	dir := filepath.Join(s.basePath, subDir, s.now().Format("2006/01"))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	filePath := filepath.Join(dir, uuid.NewString()+ext)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	n, err := io.Copy(dst, io.LimitReader(r, MaxFileSize()+1))
	if err == nil && n > MaxFileSize() {
		err = ErrFileTooLarge
	}
	if err != nil {
		os.Remove(filePath)
		if errors.Is(err, ErrFileTooLarge) {
			return "", err
		}
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	relPath, _ := filepath.Rel(s.basePath, filePath)
	return relPath, nil
}

// Open returns a stored file for reading
func (s *LocalStorage) Open(relativePath string) (*os.File, error) {
	return os.Open(s.GetFullPath(relativePath))
}

// Delete removes a file
func (s *LocalStorage) Delete(relativePath string) error {
	return os.Remove(s.GetFullPath(relativePath))
}

// Exists checks if a file exists
func (s *LocalStorage) Exists(relativePath string) bool {
	_, err := os.Stat(s.GetFullPath(relativePath))
	return err == nil
}

// GetFullPath returns the absolute path of a stored file
func (s *LocalStorage) GetFullPath(relativePath string) string {
	return filepath.Join(s.basePath, filepath.Clean("/"+relativePath))
}

// PurgeOlderThan deletes the files under subDir last modified before
// cutoff and returns how many were removed
func (s *LocalStorage) PurgeOlderThan(subDir string, cutoff time.Time) (int, error) {
	root := filepath.Join(s.basePath, subDir)
	removed := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to remove %s: %w", path, err)
			}
			removed++
		}
		return nil
	})
	return removed, err
}
