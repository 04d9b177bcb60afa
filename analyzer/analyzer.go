// Package analyzer 土壤健康评分与建议引擎。
// 所有函数都是纯函数：不做 I/O，不持有可变状态，可以并发调用。
package analyzer

import "go-soilhealth/models"

// Analyze 对一份样品做完整分析。
// 唯一的错误是无法解析的季节字段（models.ErrUnknownSeason）。
func Analyze(sample models.SoilSample) (*models.SoilAnalysisResult, error) {
	seasonal, err := SeasonalAdvice(&sample)
	if err != nil {
		return nil, err
	}

	health := HealthScore(&sample)
	tier, assessment := Assess(health)

	return &models.SoilAnalysisResult{
		Sample:                  sample,
		HealthScore:             health,
		AssessmentTier:          tier,
		OverallAssessment:       assessment,
		TextureClass:            string(ClassifyTexture(sample.SandPercentage, sample.SiltPercentage, sample.ClayPercentage)),
		Recommendations:         Recommend(&sample, health),
		ImprovementAreas:        ImprovementAreas(&sample),
		NutrientScores:          NutrientScores(&sample),
		SeasonalRecommendations: seasonal,
		CropSuitability:         EvaluateCrops(&sample),
		EnvironmentalImpacts:    EnvironmentalImpacts(&sample),
	}, nil
}
