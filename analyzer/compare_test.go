package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-soilhealth/models"
)

func TestCompare(t *testing.T) {
	current := &models.SoilAnalysisResult{
		Sample:      models.SoilSample{PH: 6.5, Nitrogen: 40, Phosphorus: 20, Potassium: 60, OrganicMatter: 3, Moisture: 30},
		HealthScore: 8,
	}
	previous := &models.SoilAnalysisResult{
		Sample:      models.SoilSample{PH: 5.5, Nitrogen: 45, Phosphorus: 40, Potassium: 60, OrganicMatter: 3, Moisture: 15},
		HealthScore: 6,
	}

	rows := Compare(current, previous)
	require.Len(t, rows, 7)

	byName := map[string]ComparisonRow{}
	for _, r := range rows {
		byName[r.Parameter] = r
	}

	assert.Equal(t, StatusImproved, byName["pH"].Status)
	assert.Equal(t, "up", byName["pH"].Direction)
	assert.InDelta(t, 1.0, byName["pH"].Difference, 1e-9)

	assert.Equal(t, StatusUnchanged, byName["Nitrogen"].Status)
	assert.Equal(t, "down", byName["Nitrogen"].Direction)
	assert.InDelta(t, 5.0, byName["Nitrogen"].Difference, 1e-9)

	assert.Equal(t, StatusDeclined, byName["Phosphorus"].Status)
	assert.Equal(t, StatusUnchanged, byName["Potassium"].Status)
	assert.Equal(t, StatusImproved, byName["Moisture"].Status)
	assert.Equal(t, StatusImproved, byName["Health Score"].Status)
}
