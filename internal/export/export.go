// Package export writes filtered subsets of the dataset back out in the
// source file's own column layout.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Bimsara-Yehan/Data-Analysis/internal/model"
	"github.com/Bimsara-Yehan/Data-Analysis/pkg/utils"
)

// FilteredFileName is the file name of a filtered-subset export, matching
// the dashboard's download name.
const FilteredFileName = "churn_filtered_data.csv"

// WriteCSV writes the header and the records' original cells to w. Rows are
// written from the raw source cells, so the column layout is byte-identical
// to the input minus excluded rows.
func WriteCSV(w io.Writer, header []string, records []model.CustomerRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, rec := range records {
		if err := writer.Write(rec.Raw); err != nil {
			return fmt.Errorf("failed to write record %s: %w", rec.CustomerID, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// Manager writes exports under a base output directory.
type Manager struct {
	out *utils.OutputManager
}

// NewManager creates a manager rooted at baseDir.
func NewManager(baseDir string) *Manager {
	return &Manager{out: utils.NewOutputManager(baseDir)}
}

// ExportFiltered writes a filtered subset to disk under the export ID and
// returns where it landed.
func (m *Manager) ExportFiltered(exportID string, header []string, records []model.CustomerRecord) (model.ExportResult, error) {
	path, err := m.out.OutputFilePath(exportID, FilteredFileName)
	if err != nil {
		return model.ExportResult{}, err
	}

	file, err := os.Create(path)
	if err != nil {
		return model.ExportResult{}, fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	if err := WriteCSV(file, header, records); err != nil {
		return model.ExportResult{}, err
	}

	fmt.Printf("💾 Export: %d records written to %s\n", len(records), path)
	return model.ExportResult{
		ID:          exportID,
		Path:        path,
		DownloadURL: m.out.DownloadURL(exportID, FilteredFileName),
		RecordCount: len(records),
		ExportedAt:  time.Now().UTC(),
	}, nil
}

// FilePath resolves a download request to the file on disk.
func (m *Manager) FilePath(exportID, fileName string) (string, error) {
	return m.out.OutputFilePath(exportID, fileName)
}
