package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// OutputManager organizes export files under a base directory, one
// subdirectory per export ID.
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager.
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{BaseOutputDir: baseOutputDir}
}

// CreateExportDir creates the directory for an export's files.
func (om *OutputManager) CreateExportDir(exportID string) (string, error) {
	dir := filepath.Join(om.BaseOutputDir, exportID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	return dir, nil
}

// OutputFilePath returns the full path for an export file, creating the
// export directory if needed. The filename is stripped of any path
// separators before joining.
func (om *OutputManager) OutputFilePath(exportID, fileName string) (string, error) {
	dir, err := om.CreateExportDir(exportID)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filepath.Base(fileName)), nil
}

// DownloadURL returns the API download path for an export file.
func (om *OutputManager) DownloadURL(exportID, fileName string) string {
	return fmt.Sprintf("/api/v1/download/%s/%s", exportID, filepath.Base(fileName))
}
