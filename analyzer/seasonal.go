package analyzer

import "go-soilhealth/models"

// CurrentSeasonKey 针对采样季节的附加建议
const CurrentSeasonKey = "CURRENT_SEASON"

var seasonalText = map[models.Season]string{
	models.SeasonSpring: "Prepare soil for planting. Apply balanced fertilizer and test soil temperature.",
	models.SeasonSummer: "Monitor soil moisture and apply mulch to conserve water.",
	models.SeasonAutumn: "Add organic matter and prepare soil for winter.",
	models.SeasonWinter: "Protect soil from erosion and plan for spring planting.",
}

// SeasonalAdvice 固定输出四季建议；春季低温或夏季缺水时追加 CURRENT_SEASON。
// 秋冬目前没有附加建议。
func SeasonalAdvice(s *models.SoilSample) (map[string]string, error) {
	season, err := models.ParseSeason(s.Season)
	if err != nil {
		return nil, err
	}

	advice := make(map[string]string, len(models.Seasons)+1)
	for _, k := range models.Seasons {
		advice[string(k)] = seasonalText[k]
	}

	switch season {
	case models.SeasonSpring:
		if s.Temperature < advisoryBands.Temperature.Min {
			advice[CurrentSeasonKey] = "Wait for soil to warm up before planting. Consider using row covers."
		}
	case models.SeasonSummer:
		if s.Moisture < advisoryBands.Moisture.Min {
			advice[CurrentSeasonKey] = "Implement irrigation schedule to maintain soil moisture."
		}
	}
	return advice, nil
}
