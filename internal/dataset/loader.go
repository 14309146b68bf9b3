package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Bimsara-Yehan/Data-Analysis/internal/engine"
	"github.com/Bimsara-Yehan/Data-Analysis/internal/model"
	"github.com/Bimsara-Yehan/Data-Analysis/pkg/utils"
)

// Required source columns. Schema is fixed by convention (Churn_Modelling
// layout), not negotiated.
var requiredColumns = []string{
	"CustomerId",
	"Geography",
	"Gender",
	"Age",
	"Balance",
	"NumOfProducts",
	"IsActiveMember",
	"Exited",
}

// Load reads the delimited dataset at path into an in-memory table.
// A missing required column yields engine.MissingFieldError; unparseable
// content yields engine.MalformedInputError.
func Load(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	table, err := Read(file, path)
	if err != nil {
		return nil, err
	}
	fmt.Printf("📄 Dataset loaded: %d records from %s\n", len(table.Records), path)
	return table, nil
}

// Read parses CSV content from r. path is used only for error messages.
func Read(r io.Reader, path string) (*Table, error) {
	csvReader := csv.NewReader(r)
	csvReader.LazyQuotes = true

	rawHeader, err := csvReader.Read()
	if err != nil {
		return nil, &engine.MalformedInputError{Path: path, Reason: fmt.Sprintf("failed to read header: %v", err)}
	}

	header := make([]string, len(rawHeader))
	cols := make(map[string]int, len(rawHeader))
	for i, h := range rawHeader {
		clean := utils.CleanHeader(h)
		header[i] = clean
		cols[clean] = i
	}

	for _, required := range requiredColumns {
		if _, ok := cols[required]; !ok {
			return nil, &engine.MissingFieldError{Field: required}
		}
	}

	var records []model.CustomerRecord
	line := 1
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &engine.MalformedInputError{Path: path, Line: line, Reason: err.Error()}
		}

		rec, err := parseRecord(row, cols)
		if err != nil {
			return nil, &engine.MalformedInputError{Path: path, Line: line, Reason: err.Error()}
		}
		records = append(records, rec)
	}

	table := &Table{
		Path:     path,
		Header:   header,
		Records:  records,
		LoadedAt: time.Now().UTC(),
	}
	table.computeBounds()
	return table, nil
}

func parseRecord(row []string, cols map[string]int) (model.CustomerRecord, error) {
	cell := func(name string) string {
		if i, ok := cols[name]; ok && i < len(row) {
			return row[i]
		}
		return ""
	}

	rec := model.CustomerRecord{
		CustomerID: cell("CustomerId"),
		Surname:    cell("Surname"),
		Geography:  cell("Geography"),
		Gender:     cell("Gender"),
	}

	var err error
	if rec.Age, err = utils.ParseIntCell(cell("Age")); err != nil {
		return rec, fmt.Errorf("Age: %w", err)
	}
	if rec.Balance, err = utils.ParseFloatCell(cell("Balance")); err != nil {
		return rec, fmt.Errorf("Balance: %w", err)
	}
	if rec.NumProducts, err = utils.ParseIntCell(cell("NumOfProducts")); err != nil {
		return rec, fmt.Errorf("NumOfProducts: %w", err)
	}
	if rec.IsActive, err = utils.ParseBoolCell(cell("IsActiveMember")); err != nil {
		return rec, fmt.Errorf("IsActiveMember: %w", err)
	}
	if rec.Exited, err = utils.ParseBoolCell(cell("Exited")); err != nil {
		return rec, fmt.Errorf("Exited: %w", err)
	}

	// Optional columns ride along for exports and summaries; bad values in
	// them are still malformed input since the layout is fixed.
	if v := cell("RowNumber"); v != "" {
		if rec.RowNumber, err = utils.ParseIntCell(v); err != nil {
			return rec, fmt.Errorf("RowNumber: %w", err)
		}
	}
	if v := cell("CreditScore"); v != "" {
		if rec.CreditScore, err = utils.ParseIntCell(v); err != nil {
			return rec, fmt.Errorf("CreditScore: %w", err)
		}
	}
	if v := cell("Tenure"); v != "" {
		if rec.Tenure, err = utils.ParseIntCell(v); err != nil {
			return rec, fmt.Errorf("Tenure: %w", err)
		}
	}
	if v := cell("HasCrCard"); v != "" {
		if rec.HasCreditCard, err = utils.ParseBoolCell(v); err != nil {
			return rec, fmt.Errorf("HasCrCard: %w", err)
		}
	}
	if v := cell("EstimatedSalary"); v != "" {
		if rec.EstimatedSalary, err = utils.ParseFloatCell(v); err != nil {
			return rec, fmt.Errorf("EstimatedSalary: %w", err)
		}
	}

	rec.Raw = make([]string, len(row))
	copy(rec.Raw, row)
	return rec, nil
}
