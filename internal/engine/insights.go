package engine

import (
	"fmt"
	"strings"

	"datasieve/internal/domain"
)

// maxInsights caps the insight list on every result.
const maxInsights = 6

// industrySignature pairs a header-keyword predicate with an insight
// generator. Signatures are evaluated in fixed priority order; the first
// strong match replaces the generic observations.
type industrySignature struct {
	name     string
	keywords []string
	generate func(summary domain.ValidationSummary) []string
}

// strongSignatureHits is the number of distinct keyword hits required
// before a signature is considered a match.
const strongSignatureHits = 2

var industrySignatures = []industrySignature{
	{
		name:     "pharmaceutical",
		keywords: []string{"medicine", "drug", "batch", "expiry", "dosage", "manufacturer"},
		generate: func(s domain.ValidationSummary) []string {
			return []string{
				"Headers follow a pharmaceutical inventory pattern (medicines, batches, expiry dates)",
				fmt.Sprintf("Tracked %d pharmaceutical records across %d fields", s.TotalRows, s.TotalFields),
				"Expiry-date columns are good candidates for shelf-life alerts",
			}
		},
	},
	{
		name:     "healthcare",
		keywords: []string{"doctor", "patient", "diagnosis", "treatment", "ward", "specialization", "appointment"},
		generate: func(s domain.ValidationSummary) []string {
			return []string{
				"Headers follow a healthcare pattern (doctor or patient records)",
				fmt.Sprintf("Dataset covers %d clinical records across %d fields", s.TotalRows, s.TotalFields),
				"Roster and billing schemas usually fit this kind of data",
			}
		},
	},
	{
		name:     "accounting",
		keywords: []string{"debit", "credit", "ledger", "account", "voucher", "balance"},
		generate: func(s domain.ValidationSummary) []string {
			return []string{
				"Headers follow an accounting ledger pattern (debits, credits, balances)",
				fmt.Sprintf("Ledger spans %d entries across %d fields", s.TotalRows, s.TotalFields),
				"Debit/credit columns can be cross-checked for balance consistency",
			}
		},
	},
	{
		name:     "retail",
		keywords: []string{"product", "order", "sku", "quantity", "price", "customer"},
		generate: func(s domain.ValidationSummary) []string {
			return []string{
				"Headers follow a retail sales pattern (orders, products, prices)",
				fmt.Sprintf("Sales data covers %d orders across %d fields", s.TotalRows, s.TotalFields),
				"Quantity and price columns support revenue breakdowns",
			}
		},
	},
	{
		name:     "finance",
		keywords: []string{"amount", "transaction", "interest", "loan", "payment", "balance"},
		generate: func(s domain.ValidationSummary) []string {
			return []string{
				"Headers follow a financial transaction pattern (amounts, payments)",
				fmt.Sprintf("Dataset covers %d transactions across %d fields", s.TotalRows, s.TotalFields),
				"Amount columns are suitable for trend and outlier charts",
			}
		},
	},
}

// buildInsights derives the short human-readable observation list for a
// result. A strong industry signature replaces the generic observations;
// the completeness and quality lines are always kept.
func buildInsights(headers []string, summary domain.ValidationSummary) []string {
	insights := []string{
		fmt.Sprintf("Data is %.1f%% complete", 100-summary.EmptyValuePercentage),
		fmt.Sprintf("Overall data quality is %s (score %.1f/100)", qualityTier(summary.DataQualityScore), summary.DataQualityScore),
	}

	if sig, ok := detectSignature(headers); ok {
		insights = append(insights, sig.generate(summary)...)
	} else {
		insights = append(insights,
			fmt.Sprintf("%s dataset with %d rows", sizeTier(summary.TotalRows), summary.TotalRows),
			fmt.Sprintf("%s table with %d columns", widthTier(summary.TotalFields), summary.TotalFields),
		)
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

func detectSignature(headers []string) (*industrySignature, bool) {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalizeFieldName(h)
	}
	for i := range industrySignatures {
		sig := &industrySignatures[i]
		hits := 0
		for _, kw := range sig.keywords {
			for _, nh := range normalized {
				if strings.Contains(nh, kw) {
					hits++
					break
				}
			}
		}
		if hits >= strongSignatureHits {
			return sig, true
		}
	}
	return nil, false
}

func qualityTier(score float64) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 70:
		return "good"
	case score >= 50:
		return "fair"
	default:
		return "poor"
	}
}

func sizeTier(rows int) string {
	switch {
	case rows >= 10000:
		return "Large"
	case rows >= 1000:
		return "Medium"
	default:
		return "Small"
	}
}

func widthTier(fields int) string {
	switch {
	case fields > 15:
		return "Wide"
	case fields >= 6:
		return "Moderate"
	default:
		return "Narrow"
	}
}
