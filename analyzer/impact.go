package analyzer

import "go-soilhealth/models"

// EnvironmentalImpacts 两条独立规则，按声明顺序输出
func EnvironmentalImpacts(s *models.SoilSample) []models.EnvironmentalImpact {
	impacts := []models.EnvironmentalImpact{}
	if s.Nitrogen > advisoryBands.Nitrogen.Max {
		impacts = append(impacts, models.EnvironmentalImpact{
			ImpactType:  "Nutrient Runoff",
			Description: "High nitrogen levels may lead to water pollution",
			Severity:    models.SeverityModerate,
			MitigationStrategies: []string{
				"Implement controlled-release fertilizers",
				"Use cover crops to reduce nutrient leaching",
			},
			LongTermEffect: "Reduced water quality if not managed",
		})
	}
	if s.OrganicMatter < advisoryBands.OrganicMatter.Min {
		impacts = append(impacts, models.EnvironmentalImpact{
			ImpactType:  "Soil Erosion",
			Description: "Low organic matter may increase soil erosion risk",
			Severity:    models.SeverityHigh,
			MitigationStrategies: []string{
				"Add organic matter through composting",
				"Implement conservation tillage",
			},
			LongTermEffect: "Improved soil structure and reduced erosion",
		})
	}
	return impacts
}
