package analyzer

import "go-soilhealth/models"

// ScoreTolerant 健康评分用的分档：10/8/6/4
func ScoreTolerant(value float64, b Band) float64 {
	switch {
	case value >= b.Min && value <= b.Max:
		return 10.0
	case value >= b.Min*0.8 && value < b.Min:
		return 8.0
	case value > b.Max && value <= b.Max*1.2:
		return 8.0
	case value >= b.Min*0.6 && value < b.Min*0.8:
		return 6.0
	case value > b.Max*1.2 && value <= b.Max*1.4:
		return 6.0
	default:
		return 4.0
	}
}

// ScoreWide 宽分档：10/7/4/1，用于养分评分表和作物适宜性
func ScoreWide(value float64, b Band) float64 {
	switch {
	case value >= b.Min && value <= b.Max:
		return 10.0
	case value >= b.Min*0.7 && value <= b.Max*1.3:
		return 7.0
	case value >= b.Min*0.5 && value <= b.Max*1.5:
		return 4.0
	default:
		return 1.0
	}
}

// PHScore 健康评分用的 pH 阶梯
func PHScore(ph float64) float64 {
	switch {
	case ph >= 6.0 && ph <= 7.0:
		return 10.0
	case ph >= 5.5 && ph < 6.0, ph > 7.0 && ph <= 7.5:
		return 8.0
	case ph >= 5.0 && ph < 5.5, ph > 7.5 && ph <= 8.0:
		return 6.0
	default:
		return 4.0
	}
}

// PHScoreWide 宽 pH 阶梯：10/7/4/1
func PHScoreWide(ph float64) float64 {
	switch {
	case ph >= 6.0 && ph <= 7.0:
		return 10.0
	case ph >= 5.5 && ph <= 7.5:
		return 7.0
	case ph >= 5.0 && ph <= 8.0:
		return 4.0
	default:
		return 1.0
	}
}

// healthFactorCount 参与健康评分的因子数
const healthFactorCount = 9

// HealthScore 九项因子等权平均。
// 求和顺序固定，保证相同输入得到完全相同的结果。
func HealthScore(s *models.SoilSample) float64 {
	total := PHScore(s.PH)
	total += ScoreTolerant(s.Nitrogen, healthBands.Nitrogen)
	total += ScoreTolerant(s.Phosphorus, healthBands.Phosphorus)
	total += ScoreTolerant(s.Potassium, healthBands.Potassium)
	total += ScoreTolerant(s.OrganicMatter, healthBands.OrganicMatter)
	total += ScoreTolerant(s.Iron, healthBands.Iron)
	total += ScoreTolerant(s.Zinc, healthBands.Zinc)
	total += ScoreTolerant(s.Copper, healthBands.Copper)
	total += ScoreTolerant(s.Manganese, healthBands.Manganese)
	return total / healthFactorCount
}

var assessmentText = map[models.AssessmentTier]string{
	models.TierExcellent: "Excellent soil health. Your soil is in optimal condition for plant growth.",
	models.TierGood:      "Good soil health. Some minor improvements can be made for optimal plant growth.",
	models.TierFair:      "Fair soil health. Several improvements are needed for better plant growth.",
	models.TierPoor:      "Poor soil health. Significant improvements are required for successful plant growth.",
}

// Assess 按 8/6/4 分界给出总体评价
func Assess(score float64) (models.AssessmentTier, string) {
	tier := models.TierPoor
	switch {
	case score >= 8.0:
		tier = models.TierExcellent
	case score >= 6.0:
		tier = models.TierGood
	case score >= 4.0:
		tier = models.TierFair
	}
	return tier, assessmentText[tier]
}

// NutrientScores 微量元素评分表（宽分档）
func NutrientScores(s *models.SoilSample) map[string]float64 {
	return map[string]float64{
		"Iron":      ScoreWide(s.Iron, advisoryBands.Iron),
		"Zinc":      ScoreWide(s.Zinc, advisoryBands.Zinc),
		"Copper":    ScoreWide(s.Copper, advisoryBands.Copper),
		"Manganese": ScoreWide(s.Manganese, advisoryBands.Manganese),
	}
}
