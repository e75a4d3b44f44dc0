package engine

import (
	"fmt"
	"log"

	"datasieve/internal/domain"
	"datasieve/internal/schema"
)

const (
	// minorIssueRatio: a layer-1 result whose structural errors stay at or
	// below this share of the required fields is kept as-is instead of
	// escalating. Tunable; the value is inherited, not derived.
	minorIssueRatio = 0.5
	// dynamicConfidenceMin is the detector confidence a dynamic schema
	// must exceed before layer 2 runs.
	dynamicConfidenceMin = 0.6
)

// allPurposeSchemaName labels the synthesized layer-3 schema in summaries.
const allPurposeSchemaName = "all_purpose"

// Detection is a dynamic-schema detector's answer for a header set.
type Detection struct {
	Schema     *schema.Schema
	Name       string
	Confidence float64
}

// Detector proposes an alternate named schema from a header set. It is the
// layer-2 extension point; a nil detector skips layer 2 entirely.
type Detector interface {
	Detect(headers []string) (*Detection, bool)
}

// Orchestrator runs the three-layer fallback strategy: the selected
// industry schema, then a dynamically detected schema, then a synthesized
// all-purpose schema. Construction-time dependencies only; a single
// Orchestrator is safe for concurrent use because every Validate call
// builds fresh accumulators.
type Orchestrator struct {
	registry *schema.Registry
	detector Detector
}

// NewOrchestrator creates an Orchestrator over an immutable schema
// registry and an optional dynamic-schema detector.
func NewOrchestrator(registry *schema.Registry, detector Detector) *Orchestrator {
	return &Orchestrator{registry: registry, detector: detector}
}

// Validate reconciles a dataset against the schema selected by industry,
// escalating through the fallback layers as needed. It never returns nil:
// every data problem is reported inside the result.
func (o *Orchestrator) Validate(ds *domain.Dataset, industry string) *domain.ValidationResult {
	if ds == nil || len(ds.Rows) == 0 {
		return emptyDatasetResult(industry)
	}

	// Layer 1: industry schema. Unknown industries and the "others"
	// placeholder get the zero-requirement generic schema, which cannot
	// fail structurally.
	sch, known := o.registry.Get(industry)
	result := ValidateAgainstSchema(ds, sch, domain.FallbackLevelIndustry)
	if result.IsValid || !known || sch.Name == schema.GenericName {
		return result
	}

	structural := CountStructuralErrors(result.Errors)
	if float64(structural) <= minorIssueRatio*float64(len(sch.Required)) {
		// Minor-issue tolerance: the file broadly fits, keep the findings.
		return result
	}

	log.Printf("engine.Orchestrator: schema %q structurally failed (%d structural errors), escalating", sch.Name, structural)

	// Layer 2: dynamic schema detection.
	if o.detector != nil {
		if det, ok := o.detector.Detect(ds.Headers); ok && det.Confidence > dynamicConfidenceMin && det.Name != sch.Name {
			dynResult := ValidateAgainstSchema(ds, det.Schema, domain.FallbackLevelDynamic)
			if dynResult.IsValid || len(dynResult.Errors) < len(result.Errors) {
				dynResult.FallbackMessage = fmt.Sprintf(
					"the %q schema did not match this file; validated against detected schema %q (confidence %.0f%%)",
					sch.Name, det.Name, det.Confidence*100)
				log.Printf("engine.Orchestrator: dynamic schema %q accepted (confidence %.2f)", det.Name, det.Confidence)
				return dynResult
			}
			log.Printf("engine.Orchestrator: dynamic schema %q rejected (no improvement)", det.Name)
		}
	}

	// Layer 3: all-purpose schema from inferred types. No required fields,
	// per-cell findings downgraded to warnings, so this always terminates.
	types := InferTypes(ds)
	allPurpose := schema.NewAllPurpose(allPurposeSchemaName, types)
	apResult := ValidateAgainstSchema(ds, allPurpose, domain.FallbackLevelAllPurpose)
	apResult.FallbackMessage = fmt.Sprintf(
		"the %q schema did not match this file; fell back to a general-purpose validation with inferred column types",
		sch.Name)
	return apResult
}

// emptyDatasetResult short-circuits zero-row input to a single top-level
// FORMAT_ERROR before any schema logic runs.
func emptyDatasetResult(industry string) *domain.ValidationResult {
	return &domain.ValidationResult{
		IsValid: false,
		Errors: []domain.ValidationError{{
			Field:    "file",
			Message:  domain.ErrEmptyDataset.Error(),
			Type:     domain.ErrorTypeFormatError,
			Severity: domain.SeverityError,
		}},
		Summary: domain.ValidationSummary{SchemaUsed: industry},
	}
}
