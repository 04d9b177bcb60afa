package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-soilhealth/models"
)

func TestEvaluateCropsCatalogOrder(t *testing.T) {
	s := optimalSample()
	crops := EvaluateCrops(&s)
	require.Len(t, crops, len(CropCatalog))
	for i, c := range crops {
		assert.Equal(t, CropCatalog[i], c.CropName)
		assert.GreaterOrEqual(t, c.SuitabilityScore, 1.0)
		assert.LessOrEqual(t, c.SuitabilityScore, 10.0)
	}
}

func TestCropPHScore(t *testing.T) {
	cases := []struct {
		crop string
		ph   float64
		want float64
	}{
		{"Corn", 6.5, 10},
		{"Corn", 7.2, 7},
		{"Corn", 8.0, 4},
		{"Wheat", 7.2, 10},
		{"Wheat", 8.0, 7},
		{"Soybeans", 5.9, 7},
		{"Cotton", 5.9, 10},
		{"Rice", 7.2, 7},
		{"Rice", 5.0, 4},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CropPHScore(c.ph, c.crop), "%s ph %v", c.crop, c.ph)
	}
}

func TestCropSoilTypeScore(t *testing.T) {
	assert.Equal(t, 10.0, CropSoilTypeScore(models.SoilTypeClay, "Corn"))
	assert.Equal(t, 7.0, CropSoilTypeScore(models.SoilTypeSilty, "Corn"))
	assert.Equal(t, 10.0, CropSoilTypeScore(models.SoilTypeSilty, "Wheat"))
	assert.Equal(t, 10.0, CropSoilTypeScore(models.SoilTypeSilty, "Soybeans"))
	assert.Equal(t, 10.0, CropSoilTypeScore(models.SoilTypeLoamy, "Rice"))
	assert.Equal(t, 7.0, CropSoilTypeScore(models.SoilTypeClay, "Cotton"))
}

func TestCropNutrientScore(t *testing.T) {
	s := models.SoilSample{Nitrogen: 40, Phosphorus: 30, Potassium: 50}
	assert.Equal(t, 10.0, CropNutrientScore(&s))

	// 10 + 7 + 4
	s = models.SoilSample{Nitrogen: 40, Phosphorus: 15, Potassium: 85}
	assert.InDelta(t, 7.0, CropNutrientScore(&s), 1e-9)
}

func TestEvaluateCropsScores(t *testing.T) {
	s := models.SoilSample{PH: 7.2, Nitrogen: 40, Phosphorus: 30, Potassium: 50, SoilType: models.SoilTypeSilty}
	crops := EvaluateCrops(&s)
	byName := map[string]models.CropSuitability{}
	for _, c := range crops {
		byName[c.CropName] = c
	}
	assert.InDelta(t, (7.0+10+7)/3, byName["Corn"].SuitabilityScore, 1e-9)
	assert.InDelta(t, 10.0, byName["Wheat"].SuitabilityScore, 1e-9)
	assert.InDelta(t, (7.0+10+10)/3, byName["Soybeans"].SuitabilityScore, 1e-9)
	assert.InDelta(t, (7.0+10+7)/3, byName["Rice"].SuitabilityScore, 1e-9)
}

func TestCropDetails(t *testing.T) {
	s := optimalSample()
	s.Phosphorus = 25
	s.Potassium = 35
	crops := EvaluateCrops(&s)

	corn := crops[0]
	assert.Equal(t, []string{"Good nitrogen levels for corn growth"}, corn.Advantages)
	assert.Equal(t, []string{"Phosphorus levels may limit root development"}, corn.Challenges)
	assert.Equal(t, "Select based on local climate", corn.RecommendedVariety)
	assert.Equal(t, "Spring", corn.PlantingSeason)

	wheat := crops[1]
	assert.Equal(t, []string{"Suitable pH range for wheat"}, wheat.Advantages)
	assert.Equal(t, []string{"Potassium levels may affect grain quality"}, wheat.Challenges)
	assert.Equal(t, "Winter wheat varieties", wheat.RecommendedVariety)
	assert.Equal(t, "Fall", wheat.PlantingSeason)
}

func TestCropDetailsWithoutChallenges(t *testing.T) {
	s := optimalSample()
	s.Phosphorus = 35
	crops := EvaluateCrops(&s)
	assert.NotNil(t, crops[0].Challenges)
	assert.Empty(t, crops[0].Challenges)
	assert.Empty(t, crops[1].Challenges)
}

func TestCropWithoutDetail(t *testing.T) {
	s := optimalSample()
	_, ok := detailFor("Cotton", &s)
	assert.False(t, ok)

	for _, c := range EvaluateCrops(&s)[2:] {
		assert.NotNil(t, c.Advantages, c.CropName)
		assert.Empty(t, c.Advantages, c.CropName)
		assert.Empty(t, c.Challenges, c.CropName)
		assert.Empty(t, c.RecommendedVariety, c.CropName)
		assert.Empty(t, c.PlantingSeason, c.CropName)
	}
}
