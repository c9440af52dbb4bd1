package session

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	RendersDir    = "renders"
	LatestSymlink = "latest"
)

// Directory holds the output of one render session
type Directory struct {
	Path      string    // Absolute path to the session directory
	ID        string    // Unique session identifier
	Timestamp time.Time // When the session was created
}

// CreateSessionDirectory creates a new, uniquely named directory under baseDir
// and points baseDir/latest at it.
func CreateSessionDirectory(baseDir string) (*Directory, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("creating renders directory: %w", err)
	}

	id := GenerateSessionID()
	absPath, err := filepath.Abs(filepath.Join(baseDir, id))
	if err != nil {
		return nil, fmt.Errorf("getting absolute path: %w", err)
	}
	if err := os.Mkdir(absPath, 0755); err != nil {
		return nil, fmt.Errorf("creating session directory: %w", err)
	}

	latestPath := filepath.Join(baseDir, LatestSymlink)
	_ = os.Remove(latestPath)
	if err := os.Symlink(id, latestPath); err != nil {
		// A missing symlink is only an inconvenience
		fmt.Printf("Warning: failed to create latest symlink: %v\n", err)
	}

	return &Directory{
		Path:      absPath,
		ID:        id,
		Timestamp: time.Now().UTC(),
	}, nil
}

// FilePath returns the absolute path for a file in the session directory
func (d *Directory) FilePath(filename string) string {
	return filepath.Join(d.Path, filename)
}

// CopyConfigFile copies the scene config into the session directory so the render can be reproduced
func (d *Directory) CopyConfigFile(srcPath string) error {
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	destPath := d.FilePath(filepath.Base(srcPath))
	if err := os.WriteFile(destPath, content, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
