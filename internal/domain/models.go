package domain

// Row is a single CSV record keyed by header name. Cell values are the raw
// strings from the file, possibly empty.
type Row map[string]string

// Dataset is an ordered sequence of rows plus the header list from the
// file's first row. The engine treats a Dataset as read-only input.
type Dataset struct {
	Headers []string `json:"headers"`
	Rows    []Row    `json:"rows"`
}

// ValidationError is a single validation finding. Schema-level findings
// (MISSING_FIELD) carry no row or column; per-cell findings carry both.
// Row indexes are 1-based data-row numbers.
type ValidationError struct {
	Field    string    `json:"field"`
	Message  string    `json:"message"`
	Type     ErrorType `json:"type"`
	Row      int       `json:"row,omitempty"`
	Column   string    `json:"column,omitempty"`
	Severity Severity  `json:"severity"`
}

// ValidationSummary holds aggregate counters for one validation run.
// Invariant: ValidRows + ErrorRows == TotalRows.
type ValidationSummary struct {
	TotalRows            int               `json:"total_rows"`
	TotalFields          int               `json:"total_fields"`
	SchemaUsed           string            `json:"schema_used"`
	ValidRows            int               `json:"valid_rows"`
	ErrorRows            int               `json:"error_rows"`
	WarningCount         int               `json:"warning_count"`
	EmptyValuePercentage float64           `json:"empty_value_percentage"`
	DataQualityScore     float64           `json:"data_quality_score"`
	DetectedDateFormats  map[string]string `json:"detected_date_formats,omitempty"`
}

// ValidationResult is the top-level output of a validation run.
// FallbackLevel is set only when a layer other than the industry schema
// produced the result.
type ValidationResult struct {
	IsValid         bool              `json:"is_valid"`
	Errors          []ValidationError `json:"errors"`
	Warnings        []ValidationError `json:"warnings"`
	Summary         ValidationSummary `json:"summary"`
	AISuggestions   []string          `json:"ai_suggestions,omitempty"`
	FallbackLevel   FallbackLevel     `json:"fallback_level,omitempty"`
	FallbackMessage string            `json:"fallback_message,omitempty"`
	Insights        []string          `json:"insights,omitempty"`
}
