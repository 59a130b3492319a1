package system

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	fs := NewFileSystem()
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "present.txt")
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	exists, err := fs.FileExists(path)
	if err != nil {
		t.Fatalf("FileExists() error = %v", err)
	}
	if !exists {
		t.Error("Expected file to exist")
	}

	exists, err = fs.FileExists(filepath.Join(tmpDir, "absent.txt"))
	if err != nil {
		t.Fatalf("FileExists() error = %v", err)
	}
	if exists {
		t.Error("Expected file to not exist")
	}
}

func TestFileExistsDirectory(t *testing.T) {
	fs := NewFileSystem()
	tmpDir := t.TempDir()

	// A directory is not a regular file
	exists, err := fs.FileExists(tmpDir)
	if err != nil {
		t.Fatalf("FileExists() error = %v", err)
	}
	if exists {
		t.Error("Expected directory to not count as a file")
	}
}

func TestReadWriteFile(t *testing.T) {
	fs := NewFileSystem()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "file.txt")

	if err := fs.WriteFile(path, "hello\nworld\n"); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	content, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if content != "hello\nworld\n" {
		t.Errorf("ReadFile() = %q, want %q", content, "hello\nworld\n")
	}
}

func TestReadFileMissing(t *testing.T) {
	fs := NewFileSystem()
	tmpDir := t.TempDir()

	if _, err := fs.ReadFile(filepath.Join(tmpDir, "missing.txt")); err == nil {
		t.Error("Expected error reading missing file")
	}
}

func TestChmod(t *testing.T) {
	fs := NewFileSystem()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "script.sh")

	if err := os.WriteFile(path, []byte("echo hi\n"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if err := fs.Chmod(path, 0755); err != nil {
		t.Fatalf("Chmod() error = %v", err)
	}

	perms, err := fs.GetPermissions(path)
	if err != nil {
		t.Fatalf("GetPermissions() error = %v", err)
	}
	if perms != 0755 {
		t.Errorf("GetPermissions() = %o, want %o", perms, 0755)
	}
}
