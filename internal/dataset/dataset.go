package dataset

import (
	"sync"
	"time"

	"github.com/Bimsara-Yehan/Data-Analysis/internal/model"
)

// Table is the in-memory customer table. Immutable after load; a reload
// builds a fresh table and swaps it in the holder.
type Table struct {
	Path     string
	Header   []string
	Records  []model.CustomerRecord
	LoadedAt time.Time

	// Observed bounds of the full table. Sliders and unset ranges default
	// to these.
	AgeBounds     model.Range
	BalanceBounds model.Range
}

// Columns returns the source column names in input order.
func (t *Table) Columns() []string {
	return t.Header
}

// HasColumn reports whether the source file carried the column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Header {
		if c == name {
			return true
		}
	}
	return false
}

func (t *Table) computeBounds() {
	for i, rec := range t.Records {
		age := float64(rec.Age)
		if i == 0 {
			t.AgeBounds = model.Range{Min: age, Max: age}
			t.BalanceBounds = model.Range{Min: rec.Balance, Max: rec.Balance}
			continue
		}
		if age < t.AgeBounds.Min {
			t.AgeBounds.Min = age
		}
		if age > t.AgeBounds.Max {
			t.AgeBounds.Max = age
		}
		if rec.Balance < t.BalanceBounds.Min {
			t.BalanceBounds.Min = rec.Balance
		}
		if rec.Balance > t.BalanceBounds.Max {
			t.BalanceBounds.Max = rec.Balance
		}
	}
}

// Holder owns the current table and supports atomic reloads. Engine calls
// stay pure; this is the only shared state in the serving shell.
type Holder struct {
	path string

	mu    sync.RWMutex
	table *Table
}

// NewHolder returns a holder for the dataset at path. Call Load before use.
func NewHolder(path string) *Holder {
	return &Holder{path: path}
}

// Load reads the dataset and swaps it in.
func (h *Holder) Load() error {
	table, err := Load(h.path)
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.table = table
	h.mu.Unlock()
	return nil
}

// Table returns the current table.
func (h *Holder) Table() *Table {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.table
}

// Path returns the dataset file path.
func (h *Holder) Path() string {
	return h.path
}
