// Package report exports validation results as CSV files that open
// cleanly in spreadsheet tools.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"datasieve/internal/domain"
)

// BOM is the UTF-8 byte order mark, written first for Excel compatibility
// on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row for findings.
var columns = []string{
	"Type",
	"Severity",
	"Field",
	"Column",
	"Row",
	"Message",
}

// Writer wraps csv.Writer for exporting validation findings.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the findings header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteResult writes all errors then all warnings of a result.
func (w *Writer) WriteResult(result *domain.ValidationResult) error {
	for i := range result.Errors {
		if err := w.csv.Write(findingToRow(&result.Errors[i])); err != nil {
			return err
		}
	}
	for i := range result.Warnings {
		if err := w.csv.Write(findingToRow(&result.Warnings[i])); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary appends a blank spacer row followed by summary rows.
func (w *Writer) WriteSummary(summary *domain.ValidationSummary) error {
	rows := [][]string{
		{},
		{"Summary", "", "", "", "", ""},
		{"Schema Used", summary.SchemaUsed, "", "", "", ""},
		{"Total Rows", strconv.Itoa(summary.TotalRows), "", "", "", ""},
		{"Valid Rows", strconv.Itoa(summary.ValidRows), "", "", "", ""},
		{"Error Rows", strconv.Itoa(summary.ErrorRows), "", "", "", ""},
		{"Warnings", strconv.Itoa(summary.WarningCount), "", "", "", ""},
		{"Empty Values %", fmt.Sprintf("%.2f", summary.EmptyValuePercentage), "", "", "", ""},
		{"Data Quality Score", fmt.Sprintf("%.2f", summary.DataQualityScore), "", "", "", ""},
	}
	for _, row := range rows {
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

// Export writes a complete report (BOM, header, findings, summary) to w.
func Export(w io.Writer, result *domain.ValidationResult) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	rw := NewWriter(w)
	if err := rw.WriteHeader(); err != nil {
		return err
	}
	if err := rw.WriteResult(result); err != nil {
		return err
	}
	if err := rw.WriteSummary(&result.Summary); err != nil {
		return err
	}
	return rw.Flush()
}

func findingToRow(f *domain.ValidationError) []string {
	row := ""
	if f.Row > 0 {
		row = strconv.Itoa(f.Row)
	}
	return []string{
		string(f.Type),
		string(f.Severity),
		f.Field,
		f.Column,
		row,
		f.Message,
	}
}
