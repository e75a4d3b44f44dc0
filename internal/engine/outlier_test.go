package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectOutliers_TooFewValues(t *testing.T) {
	// Fewer than four values never yields outliers, regardless of spread.
	for _, values := range [][]float64{
		nil,
		{5},
		{1, 1000000},
		{1, 2, 1000000},
	} {
		report := DetectOutliers(values)
		assert.Empty(t, report.Outliers)
		assert.Empty(t, report.Indices)
	}
}

func TestDetectOutliers_FlagsExtremeValue(t *testing.T) {
	report := DetectOutliers([]float64{10, 12, 11, 13, 9, 500})

	require.Len(t, report.Outliers, 1)
	assert.Equal(t, 500.0, report.Outliers[0])
	assert.Equal(t, []int{5}, report.Indices)
}

func TestDetectOutliers_NoOutliersInTightCluster(t *testing.T) {
	report := DetectOutliers([]float64{10, 11, 12, 13, 14, 15})
	assert.Empty(t, report.Outliers)
}

func TestDetectOutliers_PreservesOriginalIndices(t *testing.T) {
	report := DetectOutliers([]float64{-400, 10, 12, 11, 13, 9, 500})

	require.Len(t, report.Outliers, 2)
	assert.Equal(t, []float64{-400, 500}, report.Outliers)
	assert.Equal(t, []int{0, 6}, report.Indices)
}

func TestDetectOutliers_BoundsAreInclusive(t *testing.T) {
	// Values sitting exactly on the fences are not outliers.
	values := []float64{10, 12, 11, 13, 9, 500}
	report := DetectOutliers(values)
	// Q1=10, Q3=13, IQR=3, fences [5.5, 17.5].
	for _, v := range values {
		if v >= 5.5 && v <= 17.5 {
			assert.NotContains(t, report.Outliers, v)
		}
	}
}

func TestDetectOutliers_LowOutlier(t *testing.T) {
	report := DetectOutliers([]float64{100, 102, 101, 103, 99, 1})
	require.Len(t, report.Outliers, 1)
	assert.Equal(t, 1.0, report.Outliers[0])
}
