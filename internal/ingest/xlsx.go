package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"datasieve/internal/domain"
)

// ReadXLSX parses the first sheet of an XLSX workbook into a Dataset with
// the same shape ReadCSV produces.
func ReadXLSX(r io.Reader, maxRows int) (*domain.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrMissingHeader
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(records) == 0 {
		return nil, domain.ErrMissingHeader
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	ds := &domain.Dataset{Headers: headers}
	for _, rec := range records[1:] {
		if maxRows > 0 && len(ds.Rows) >= maxRows {
			return nil, domain.ErrTooManyRows
		}
		ds.Rows = append(ds.Rows, recordToRow(headers, rec))
	}
	return ds, nil
}
