package engine

import "sort"

const (
	// minOutlierSamples is the smallest column size worth analyzing;
	// quartiles over fewer values are meaningless.
	minOutlierSamples = 4
	// iqrMultiplier is the standard Tukey fence width.
	iqrMultiplier = 1.5
)

// OutlierReport lists the values outside the IQR fences and their
// positions in the input slice, so callers can map back to row numbers.
type OutlierReport struct {
	Outliers []float64
	Indices  []int
}

// DetectOutliers flags values outside [Q1 - 1.5*IQR, Q3 + 1.5*IQR].
// Columns with fewer than minOutlierSamples values return an empty report
// regardless of spread.
func DetectOutliers(values []float64) OutlierReport {
	n := len(values)
	if n < minOutlierSamples {
		return OutlierReport{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	// Percentile indexes: floor(n*0.25) and floor(n*0.75).
	q1 := sorted[n/4]
	q3 := sorted[n*3/4]
	iqr := q3 - q1
	lower := q1 - iqrMultiplier*iqr
	upper := q3 + iqrMultiplier*iqr

	var report OutlierReport
	for i, v := range values {
		if v < lower || v > upper {
			report.Outliers = append(report.Outliers, v)
			report.Indices = append(report.Indices, i)
		}
	}
	return report
}
