package utils

import (
	"math"
	"strconv"
	"strings"
)

// CleanHeader normalizes a CSV header cell: trims whitespace and strips all
// quotes, so files exported from spreadsheets still match the schema.
func CleanHeader(h string) string {
	h = strings.TrimSpace(h)
	return strings.ReplaceAll(h, `"`, "")
}

// ParseValue converts a CSV cell to the most specific type it can: int,
// then float64, falling back to the trimmed string.
func ParseValue(s string) interface{} {
	s = strings.TrimSpace(s)

	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// ParseIntCell parses an integer cell, tolerating float-formatted values
// like "42.0" that some exports produce.
func ParseIntCell(s string) (int, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// ParseFloatCell parses a float cell.
func ParseFloatCell(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// ParseBoolCell parses the dataset's 0/1 flag columns.
func ParseBoolCell(s string) (bool, error) {
	i, err := ParseIntCell(s)
	if err != nil {
		return false, err
	}
	return i != 0, nil
}

// RoundPercent rounds a percentage to two decimals for presentation.
// Engine results stay unrounded; only output formatting uses this.
func RoundPercent(v float64) float64 {
	return math.Round(v*100) / 100
}
