package analyzer

import "go-soilhealth/models"

// ImprovementAreas 列出超出农艺区间的指标
func ImprovementAreas(s *models.SoilSample) []string {
	areas := []string{}
	if !advisoryBands.PH.Contains(s.PH) {
		areas = append(areas, "Soil pH needs adjustment")
	}
	if s.Nitrogen < advisoryBands.Nitrogen.Min {
		areas = append(areas, "Nitrogen levels are low")
	}
	if s.Phosphorus < advisoryBands.Phosphorus.Min {
		areas = append(areas, "Phosphorus levels are low")
	}
	if s.Potassium < advisoryBands.Potassium.Min {
		areas = append(areas, "Potassium levels are low")
	}
	if s.OrganicMatter < advisoryBands.OrganicMatter.Min {
		areas = append(areas, "Organic matter content needs improvement")
	}
	if s.Moisture < advisoryBands.Moisture.Min {
		areas = append(areas, "Soil moisture levels are low")
	}
	return areas
}
