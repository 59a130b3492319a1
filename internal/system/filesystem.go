package system

import (
	"fmt"
	"os"
)

// FileSystem handles file system operations
type FileSystem struct{}

// NewFileSystem creates a new FileSystem instance
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// FileExists checks if a path exists and refers to a regular file
func (fs *FileSystem) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.Mode().IsRegular(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists %s: %w", path, err)
}

// ReadFile reads the full content of a file
func (fs *FileSystem) ReadFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(content), nil
}

// WriteFile writes content to a file, truncating any previous content
func (fs *FileSystem) WriteFile(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// Chmod changes the permissions of a file
func (fs *FileSystem) Chmod(path string, perms os.FileMode) error {
	if err := os.Chmod(path, perms); err != nil {
		return fmt.Errorf("failed to chmod %s to %o: %w", path, perms, err)
	}
	return nil
}

// GetPermissions returns the permissions of a file
func (fs *FileSystem) GetPermissions(path string) (os.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return info.Mode().Perm(), nil
}
