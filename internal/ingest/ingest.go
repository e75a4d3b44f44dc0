// Package ingest turns uploaded CSV and XLSX files into datasets the
// validation engine can consume. The engine itself never touches files.
package ingest

import (
	"io"
	"path/filepath"
	"strings"

	"datasieve/internal/domain"
)

// ReadFile dispatches on the file extension. Only .csv and .xlsx are
// supported.
func ReadFile(r io.Reader, filename string, maxRows int) (*domain.Dataset, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ReadCSV(r, maxRows)
	case ".xlsx":
		return ReadXLSX(r, maxRows)
	default:
		return nil, domain.ErrUnsupportedFileType
	}
}
