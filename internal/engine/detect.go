package engine

import "datasieve/internal/schema"

// OverlapDetector proposes the registry schema whose required fields best
// overlap the dataset's headers. Confidence is the matched-required ratio,
// so a full header match yields 1.0.
type OverlapDetector struct {
	registry *schema.Registry
}

// NewOverlapDetector creates a detector over the given registry.
func NewOverlapDetector(registry *schema.Registry) *OverlapDetector {
	return &OverlapDetector{registry: registry}
}

// Detect scores every named schema and returns the best candidate, if any.
// Schemas without required fields cannot be detected.
func (d *OverlapDetector) Detect(headers []string) (*Detection, bool) {
	var best *Detection
	for _, s := range d.registry.All() {
		if len(s.Required) == 0 {
			continue
		}
		matched := 0
		for _, f := range s.Required {
			if _, ok := MatchField(f, headers); ok {
				matched++
			}
		}
		confidence := float64(matched) / float64(len(s.Required))
		if best == nil || confidence > best.Confidence {
			best = &Detection{Schema: s, Name: s.Name, Confidence: confidence}
		}
	}
	if best == nil || best.Confidence == 0 {
		return nil, false
	}
	return best, true
}
