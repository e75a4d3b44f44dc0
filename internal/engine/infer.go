package engine

import (
	"strings"

	"datasieve/internal/domain"
)

const (
	// inferenceSampleSize caps how many non-empty values per column are
	// examined when inferring a type.
	inferenceSampleSize = 100
	// numberInferenceRatio is the share of sampled values that must parse
	// as numbers before a column is inferred numeric.
	numberInferenceRatio = 0.8
	// dateInferenceRatio is the share of sampled values that must parse
	// as dates before a column is inferred as dates.
	dateInferenceRatio = 0.6
)

// InferTypes samples each column and infers number, date, or string.
// Columns with no non-empty values default to string.
func InferTypes(ds *domain.Dataset) map[string]domain.FieldType {
	types := make(map[string]domain.FieldType, len(ds.Headers))
	for _, header := range ds.Headers {
		types[header] = inferColumn(ds, header)
	}
	return types
}

func inferColumn(ds *domain.Dataset, header string) domain.FieldType {
	sampled, numbers, dates := 0, 0, 0
	for _, row := range ds.Rows {
		raw := strings.TrimSpace(row[header])
		if raw == "" {
			continue
		}
		sampled++
		if IsValidNumber(raw) {
			numbers++
		}
		if ValidateDate(raw).Valid {
			dates++
		}
		if sampled == inferenceSampleSize {
			break
		}
	}
	if sampled == 0 {
		return domain.FieldTypeString
	}
	if float64(numbers)/float64(sampled) >= numberInferenceRatio {
		return domain.FieldTypeNumber
	}
	if float64(dates)/float64(sampled) >= dateInferenceRatio {
		return domain.FieldTypeDate
	}
	return domain.FieldTypeString
}
