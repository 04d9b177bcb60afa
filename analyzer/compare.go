package analyzer

import (
	"math"

	"go-soilhealth/models"
)

// ComparisonStatus 两次分析之间某项指标的变化
type ComparisonStatus string

const (
	StatusImproved  ComparisonStatus = "Improved"
	StatusDeclined  ComparisonStatus = "Declined"
	StatusUnchanged ComparisonStatus = "Unchanged"
)

// ComparisonRow 对比表的一行
type ComparisonRow struct {
	Parameter  string           `json:"parameter"`
	Current    float64          `json:"current"`
	Previous   float64          `json:"previous"`
	Difference float64          `json:"difference"`
	Direction  string           `json:"direction"`
	Status     ComparisonStatus `json:"status"`
}

const (
	phChangeThreshold      = 0.5
	scoreChangeThreshold   = 0.5
	defaultChangeThreshold = 10.0
)

// Compare 逐项对比两次分析，差值小于阈值视为未变化
func Compare(current, previous *models.SoilAnalysisResult) []ComparisonRow {
	c, p := &current.Sample, &previous.Sample
	return []ComparisonRow{
		compareValue("pH", c.PH, p.PH, phChangeThreshold),
		compareValue("Nitrogen", c.Nitrogen, p.Nitrogen, defaultChangeThreshold),
		compareValue("Phosphorus", c.Phosphorus, p.Phosphorus, defaultChangeThreshold),
		compareValue("Potassium", c.Potassium, p.Potassium, defaultChangeThreshold),
		compareValue("Organic Matter", c.OrganicMatter, p.OrganicMatter, defaultChangeThreshold),
		compareValue("Moisture", c.Moisture, p.Moisture, defaultChangeThreshold),
		compareValue("Health Score", current.HealthScore, previous.HealthScore, scoreChangeThreshold),
	}
}

func compareValue(name string, current, previous, threshold float64) ComparisonRow {
	diff := current - previous
	row := ComparisonRow{
		Parameter:  name,
		Current:    current,
		Previous:   previous,
		Difference: math.Abs(diff),
		Direction:  "up",
		Status:     StatusUnchanged,
	}
	if diff < 0 {
		row.Direction = "down"
	}
	switch {
	case math.Abs(diff) < threshold:
	case diff > 0:
		row.Status = StatusImproved
	default:
		row.Status = StatusDeclined
	}
	return row
}
