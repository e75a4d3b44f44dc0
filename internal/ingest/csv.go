package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"datasieve/internal/domain"
)

// utf8BOM is stripped from the first header cell; Excel prepends it when
// saving CSV on Windows.
const utf8BOM = "\uFEFF"

// ReadCSV parses CSV content into a Dataset. The first record becomes the
// header list; ragged data rows are padded or truncated to the header
// count. maxRows bounds the number of data rows (0 means unlimited).
func ReadCSV(r io.Reader, maxRows int) (*domain.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	headerRec, err := cr.Read()
	if err == io.EOF {
		return nil, domain.ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}

	headers := make([]string, len(headerRec))
	for i, h := range headerRec {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		headers[i] = strings.TrimSpace(h)
	}

	ds := &domain.Dataset{Headers: headers}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, fmt.Errorf("reading row %d: %w", parseErr.Line, err)
			}
			return nil, fmt.Errorf("reading rows: %w", err)
		}
		if maxRows > 0 && len(ds.Rows) >= maxRows {
			return nil, domain.ErrTooManyRows
		}
		ds.Rows = append(ds.Rows, recordToRow(headers, rec))
	}
	return ds, nil
}

func recordToRow(headers []string, rec []string) domain.Row {
	row := make(domain.Row, len(headers))
	for i, h := range headers {
		if i < len(rec) {
			row[h] = rec[i]
		} else {
			row[h] = ""
		}
	}
	return row
}
