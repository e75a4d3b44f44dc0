package domain

// ErrorType classifies a single validation finding.
type ErrorType string

const (
	ErrorTypeMissingField ErrorType = "MISSING_FIELD"
	ErrorTypeTypeMismatch ErrorType = "TYPE_MISMATCH"
	ErrorTypeFormatError  ErrorType = "FORMAT_ERROR"
	ErrorTypeEmptyValue   ErrorType = "EMPTY_VALUE"
	ErrorTypeOutlier      ErrorType = "OUTLIER"
	ErrorTypeExtraField   ErrorType = "EXTRA_FIELD"
	// ErrorTypeBusinessRule is reserved for schema-specific rule runners.
	ErrorTypeBusinessRule ErrorType = "BUSINESS_RULE"
)

// Severity determines whether a finding blocks validity.
// Only "error" entries affect IsValid.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// FieldType is the expected value type of a schema field.
type FieldType string

const (
	FieldTypeNumber FieldType = "number"
	FieldTypeDate   FieldType = "date"
	FieldTypeString FieldType = "string"
)

// FallbackLevel identifies which fallback layer produced a result.
// The empty value means the industry schema succeeded directly.
type FallbackLevel string

const (
	FallbackLevelIndustry   FallbackLevel = "industry"
	FallbackLevelDynamic    FallbackLevel = "dynamic"
	FallbackLevelAllPurpose FallbackLevel = "all-purpose"
)
