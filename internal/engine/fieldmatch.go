package engine

import "strings"

// fieldAliases maps normalized canonical field names to alias tokens. A CSV
// header matches a field when its normalized form contains any of the
// field's alias tokens. Checked only after exact and substring matching.
var fieldAliases = map[string][]string{
	"customername":   {"customer", "client", "buyer"},
	"doctorname":     {"doctor", "physician", "consultant"},
	"patientname":    {"patient"},
	"amount":         {"amount", "amt", "total", "price", "value"},
	"totalamount":    {"total", "amount", "grand"},
	"billno":         {"bill", "invoice", "receipt"},
	"billdate":       {"date", "billed"},
	"orderdate":      {"date", "ordered"},
	"date":           {"date", "day"},
	"department":     {"dept", "department", "unit"},
	"specialization": {"speciality", "specialty", "specialisation"},
	"shift":          {"shift", "duty"},
	"starttime":      {"start", "begin"},
	"endtime":        {"end", "finish"},
	"quantity":       {"qty", "quantity", "count", "units"},
	"unitprice":      {"price", "rate", "cost"},
	"paymentmode":    {"payment", "mode", "method"},
	"productname":    {"product", "item", "sku"},
	"medicinename":   {"medicine", "drug", "product"},
	"expirydate":     {"expiry", "expiration", "exp"},
}

// normalizeFieldName lowercases and strips everything outside [a-z0-9].
func normalizeFieldName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MatchField resolves a canonical schema field to the CSV header that
// supplies its values. Strategies are tried in order across all headers,
// first hit wins: exact normalized equality, substring containment in
// either direction, then the alias table.
func MatchField(field string, headers []string) (string, bool) {
	nf := normalizeFieldName(field)
	if nf == "" {
		return "", false
	}

	for _, h := range headers {
		if normalizeFieldName(h) == nf {
			return h, true
		}
	}

	for _, h := range headers {
		nh := normalizeFieldName(h)
		if nh == "" {
			continue
		}
		if strings.Contains(nh, nf) || strings.Contains(nf, nh) {
			return h, true
		}
	}

	if tokens, ok := fieldAliases[nf]; ok {
		for _, h := range headers {
			nh := normalizeFieldName(h)
			for _, tok := range tokens {
				if strings.Contains(nh, tok) {
					return h, true
				}
			}
		}
	}

	return "", false
}

// MatchesAnyField reports whether a CSV header matches at least one of the
// given schema fields. Used for extra-field detection.
func MatchesAnyField(header string, fields []string) bool {
	for _, f := range fields {
		if matchPair(f, header) {
			return true
		}
	}
	return false
}

func matchPair(field, header string) bool {
	nf := normalizeFieldName(field)
	nh := normalizeFieldName(header)
	if nf == "" || nh == "" {
		return false
	}
	if nf == nh {
		return true
	}
	if strings.Contains(nh, nf) || strings.Contains(nf, nh) {
		return true
	}
	for _, tok := range fieldAliases[nf] {
		if strings.Contains(nh, tok) {
			return true
		}
	}
	return false
}

// suggestHeader finds a header sharing the field's leading word, as a
// best-effort hint for missing-field errors. Non-blocking: no suggestion
// is fine.
func suggestHeader(field string, headers []string) (string, bool) {
	parts := strings.FieldsFunc(field, func(r rune) bool {
		return r == '_' || r == ' ' || r == '-'
	})
	if len(parts) == 0 {
		return "", false
	}
	word := normalizeFieldName(parts[0])
	if word == "" {
		return "", false
	}
	for _, h := range headers {
		if strings.Contains(normalizeFieldName(h), word) {
			return h, true
		}
	}
	return "", false
}
