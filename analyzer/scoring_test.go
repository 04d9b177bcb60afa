package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-soilhealth/models"
)

func TestScoreTolerant(t *testing.T) {
	band := Band{30, 50}
	cases := []struct {
		value float64
		want  float64
	}{
		{40, 10}, {30, 10}, {50, 10},
		{26, 8}, {55, 8},
		{20, 6}, {65, 6},
		{10, 4}, {80, 4}, {-5, 4},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ScoreTolerant(c.value, band), "value %v", c.value)
	}
}

func TestScoreWide(t *testing.T) {
	band := Band{30, 50}
	cases := []struct {
		value float64
		want  float64
	}{
		{40, 10}, {25, 7}, {60, 7},
		{16, 4}, {70, 4},
		{5, 1}, {100, 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ScoreWide(c.value, band), "value %v", c.value)
	}
}

func TestPHScoreVariants(t *testing.T) {
	cases := []struct {
		ph       float64
		tolerant float64
		wide     float64
	}{
		{6.5, 10, 10},
		{6.0, 10, 10},
		{5.7, 8, 7},
		{7.3, 8, 7},
		{5.2, 6, 4},
		{7.8, 6, 4},
		{4.5, 4, 1},
		{9.0, 4, 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.tolerant, PHScore(c.ph), "ph %v", c.ph)
		assert.Equal(t, c.wide, PHScoreWide(c.ph), "ph %v", c.ph)
	}
}

func TestHealthScoreAllOptimal(t *testing.T) {
	s := optimalSample()
	assert.Equal(t, 10.0, HealthScore(&s))
}

func TestHealthScoreMixedBands(t *testing.T) {
	s := models.SoilSample{
		PH:            5.2,
		Nitrogen:      26,
		Phosphorus:    45,
		Potassium:     30,
		OrganicMatter: 1.0,
		Iron:          5,
		Zinc:          5,
		Copper:        1.0,
		Manganese:     8,
		SoilType:      models.SoilTypeLoamy,
	}
	// 6 + 8 + 8 + 6 + 4 + 10 + 6 + 10 + 4
	assert.InDelta(t, 62.0/9.0, HealthScore(&s), 1e-9)
}

func TestHealthScoreIgnoresUnrelatedFields(t *testing.T) {
	a := optimalSample()
	b := a
	b.Location = "North Field"
	b.CropType = "Rice"
	b.Moisture = 5
	b.Temperature = 40
	b.SoilType = models.SoilTypeChalky
	assert.Equal(t, HealthScore(&a), HealthScore(&b))
}

func TestHealthScoreRange(t *testing.T) {
	worst := models.SoilSample{PH: 14, Nitrogen: -10, Phosphorus: 1000, Potassium: 0, OrganicMatter: 50}
	score := HealthScore(&worst)
	assert.GreaterOrEqual(t, score, 1.0)
	assert.LessOrEqual(t, score, 10.0)
	assert.Equal(t, 4.0, score)
}

func TestAssessBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		tier  models.AssessmentTier
	}{
		{10, models.TierExcellent},
		{8.0, models.TierExcellent},
		{7.99, models.TierGood},
		{6.0, models.TierGood},
		{5.9, models.TierFair},
		{4.0, models.TierFair},
		{3.9, models.TierPoor},
	}
	for _, c := range cases {
		tier, text := Assess(c.score)
		assert.Equal(t, c.tier, tier, "score %v", c.score)
		assert.NotEmpty(t, text)
	}
}

func TestNutrientScores(t *testing.T) {
	s := models.SoilSample{Iron: 5, Zinc: 1.5, Copper: 0.5, Manganese: 10}
	scores := NutrientScores(&s)
	assert.Equal(t, map[string]float64{
		"Iron":      10,
		"Zinc":      7,
		"Copper":    4,
		"Manganese": 1,
	}, scores)
}
