package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"datasieve/internal/domain"
	"datasieve/internal/schema"
)

// structuralCollapseRatio: when structural errors exceed this share of the
// schema's checkable surface (required fields + rows x typed fields), the
// file most likely does not match the schema at all. Tunable; the value is
// inherited, not derived.
const structuralCollapseRatio = 0.5

// ValidateAgainstSchema runs one full validation pass of a dataset against
// a single schema. All-purpose schemas skip structural checks entirely and
// downgrade per-cell findings to warnings, so that layer can never fail.
func ValidateAgainstSchema(ds *domain.Dataset, sch *schema.Schema, level domain.FallbackLevel) *domain.ValidationResult {
	var errs, warns []domain.ValidationError
	var suggestions []string

	// Step 1: header mapping. Canonical field -> CSV header. All-purpose
	// schemas map every header to itself. Each header supplies at most one
	// field: exact matches claim headers first so a fuzzy match cannot
	// steal a header another field names outright, then remaining fields
	// fuzzy-match over the unclaimed headers in declaration order. A
	// required field that loses its only candidate header is missing.
	mapping := make(map[string]string)
	var missingRequired []string
	if sch.AllPurpose {
		for _, h := range ds.Headers {
			mapping[h] = h
		}
	} else {
		claimed := make(map[string]bool, len(ds.Headers))
		for _, f := range sch.AllFields() {
			nf := normalizeFieldName(f)
			for _, h := range ds.Headers {
				if !claimed[h] && normalizeFieldName(h) == nf {
					mapping[f] = h
					claimed[h] = true
					break
				}
			}
		}
		for _, f := range sch.AllFields() {
			if _, ok := mapping[f]; ok {
				continue
			}
			free := make([]string, 0, len(ds.Headers))
			for _, h := range ds.Headers {
				if !claimed[h] {
					free = append(free, h)
				}
			}
			if h, ok := MatchField(f, free); ok {
				mapping[f] = h
				claimed[h] = true
			}
		}
		for _, f := range sch.Required {
			if _, ok := mapping[f]; ok {
				continue
			}
			missingRequired = append(missingRequired, f)
			errs = append(errs, domain.ValidationError{
				Field:    f,
				Message:  fmt.Sprintf("required field %q was not found in the uploaded file", f),
				Type:     domain.ErrorTypeMissingField,
				Severity: domain.SeverityError,
			})
			if hint, ok := suggestHeader(f, ds.Headers); ok {
				suggestions = append(suggestions, fmt.Sprintf("Field %q is missing. Did you mean column %q?", f, hint))
			} else {
				suggestions = append(suggestions, fmt.Sprintf("Field %q is missing. Add a %q column to the file.", f, f))
			}
		}

		// Step 2: extra-field detection. Unexpected columns never block
		// validation. The zero-requirement generic schema accepts every
		// column, so it is exempt.
		allFields := sch.AllFields()
		for _, h := range ds.Headers {
			if len(allFields) == 0 {
				break
			}
			if !MatchesAnyField(h, allFields) {
				warns = append(warns, domain.ValidationError{
					Field:    h,
					Column:   h,
					Message:  fmt.Sprintf("column %q is not part of the %q schema and will be ignored", h, sch.Name),
					Type:     domain.ErrorTypeExtraField,
					Severity: domain.SeverityWarning,
				})
			}
		}
	}

	// Expected type and canonical field per header, in declaration order.
	// The mapping is injective, so this cannot depend on iteration order.
	mappedFields := ds.Headers
	if !sch.AllPurpose {
		mappedFields = sch.AllFields()
	}
	expectedType := make(map[string]domain.FieldType, len(mapping))
	fieldByHeader := make(map[string]string, len(mapping))
	typedFields := 0
	for _, f := range mappedFields {
		h, ok := mapping[f]
		if !ok {
			continue
		}
		t := sch.FieldTypeOf(f)
		expectedType[h] = t
		fieldByHeader[h] = f
		if t != domain.FieldTypeString {
			typedFields++
		}
	}

	cellSeverity := domain.SeverityError
	if sch.AllPurpose {
		cellSeverity = domain.SeverityWarning
	}

	// Step 3: per-cell scan.
	numericValues := make(map[string][]float64)
	numericRowNums := make(map[string][]int)
	dateFormats := make(map[string]string)
	emptyCells := 0
	errorRows := 0

	for i, row := range ds.Rows {
		rowNum := i + 1
		rowHasError := false

		for _, h := range ds.Headers {
			raw := row[h]
			field := fieldByHeader[h]
			if field == "" {
				field = h
			}

			if strings.TrimSpace(raw) == "" {
				emptyCells++
				warns = append(warns, domain.ValidationError{
					Field:    field,
					Message:  fmt.Sprintf("empty value in column %q", h),
					Type:     domain.ErrorTypeEmptyValue,
					Row:      rowNum,
					Column:   h,
					Severity: domain.SeverityWarning,
				})
				continue
			}

			switch expectedType[h] {
			case domain.FieldTypeNumber:
				v, err := ParseNumber(raw)
				if err != nil {
					finding := domain.ValidationError{
						Field:    field,
						Message:  fmt.Sprintf("expected a number in column %q but got %q", h, raw),
						Type:     domain.ErrorTypeTypeMismatch,
						Row:      rowNum,
						Column:   h,
						Severity: cellSeverity,
					}
					if sch.AllPurpose {
						warns = append(warns, finding)
					} else {
						errs = append(errs, finding)
						rowHasError = true
					}
					continue
				}
				numericValues[h] = append(numericValues[h], v)
				numericRowNums[h] = append(numericRowNums[h], rowNum)

			case domain.FieldTypeDate:
				res := ValidateDate(raw)
				if !res.Valid {
					finding := domain.ValidationError{
						Field:    field,
						Message:  fmt.Sprintf("unrecognized date format in column %q: %q", h, raw),
						Type:     domain.ErrorTypeFormatError,
						Row:      rowNum,
						Column:   h,
						Severity: cellSeverity,
					}
					if sch.AllPurpose {
						warns = append(warns, finding)
					} else {
						errs = append(errs, finding)
						rowHasError = true
					}
					continue
				}
				if _, seen := dateFormats[h]; !seen {
					dateFormats[h] = res.Format
				}
			}
		}

		if rowHasError {
			errorRows++
		}
	}

	// Step 4: outlier pass, one aggregated warning per numeric column.
	for _, h := range ds.Headers {
		values := numericValues[h]
		report := DetectOutliers(values)
		if len(report.Outliers) == 0 {
			continue
		}
		rowNums := make([]string, len(report.Indices))
		for i, idx := range report.Indices {
			rowNums[i] = strconv.Itoa(numericRowNums[h][idx])
		}
		field := fieldByHeader[h]
		if field == "" {
			field = h
		}
		warns = append(warns, domain.ValidationError{
			Field: field,
			Message: fmt.Sprintf("column %q has %d statistical outlier(s) at row(s) %s",
				h, len(report.Outliers), strings.Join(rowNums, ", ")),
			Type:     domain.ErrorTypeOutlier,
			Column:   h,
			Severity: domain.SeverityWarning,
		})
	}

	// Step 5: metrics. Computed before the structural-collapse sentinel so
	// the sentinel does not feed back into the score.
	totalCells := len(ds.Rows) * len(ds.Headers)
	emptyPct := 0.0
	if totalCells > 0 {
		emptyPct = 100 * float64(emptyCells) / float64(totalCells)
	}
	score := 100 - 10*float64(len(errs)) - 2*float64(len(warns)) - emptyPct
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	score = math.Round(score*100) / 100
	emptyPct = math.Round(emptyPct*100) / 100

	// Step 6: structural-collapse check (named schemas only). The extra
	// FORMAT_ERROR is the orchestrator's escalation signal.
	if !sch.AllPurpose {
		structural := CountStructuralErrors(errs)
		budget := len(sch.Required) + len(ds.Rows)*typedFields
		if budget > 0 && float64(structural) > structuralCollapseRatio*float64(budget) {
			errs = append(errs, domain.ValidationError{
				Field:    "file",
				Message:  "unclear file structure: the data does not resemble the selected schema",
				Type:     domain.ErrorTypeFormatError,
				Severity: domain.SeverityError,
			})
		}
	}

	summary := domain.ValidationSummary{
		TotalRows:            len(ds.Rows),
		TotalFields:          len(ds.Headers),
		SchemaUsed:           sch.Name,
		ValidRows:            len(ds.Rows) - errorRows,
		ErrorRows:            errorRows,
		WarningCount:         len(warns),
		EmptyValuePercentage: emptyPct,
		DataQualityScore:     score,
	}
	if len(dateFormats) > 0 {
		summary.DetectedDateFormats = dateFormats
	}

	result := &domain.ValidationResult{
		IsValid:       len(errs) == 0 && len(missingRequired) == 0,
		Errors:        errs,
		Warnings:      warns,
		Summary:       summary,
		AISuggestions: suggestions,
		Insights:      buildInsights(ds.Headers, summary),
	}
	if level == domain.FallbackLevelDynamic || level == domain.FallbackLevelAllPurpose {
		result.FallbackLevel = level
	}
	return result
}

// CountStructuralErrors counts the error kinds that indicate the file does
// not fit the schema shape (as opposed to isolated bad cells counting the
// same kinds, which are included deliberately).
func CountStructuralErrors(errs []domain.ValidationError) int {
	n := 0
	for _, e := range errs {
		switch e.Type {
		case domain.ErrorTypeMissingField, domain.ErrorTypeTypeMismatch, domain.ErrorTypeFormatError:
			n++
		}
	}
	return n
}
