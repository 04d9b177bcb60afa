package analyzer

import (
	"slices"

	"go-soilhealth/models"
)

// CropCatalog 参与评估的作物，输出顺序与此一致
var CropCatalog = []string{"Corn", "Wheat", "Soybeans", "Cotton", "Rice"}

type phFit struct {
	optimal    Band
	acceptable Band
}

var cropPHFit = map[string]phFit{
	"Corn":     {optimal: Band{5.8, 7.0}, acceptable: Band{5.5, 7.5}},
	"Wheat":    {optimal: Band{6.0, 7.5}, acceptable: Band{5.5, 8.0}},
	"Soybeans": {optimal: Band{6.0, 7.0}, acceptable: Band{5.5, 7.5}},
}

// 未列出的作物沿用玉米的区间
var defaultPHFit = cropPHFit["Corn"]

var cropSoilPreference = map[string][]models.SoilType{
	"Corn":     {models.SoilTypeLoamy, models.SoilTypeClay},
	"Wheat":    {models.SoilTypeLoamy, models.SoilTypeSilty},
	"Soybeans": {models.SoilTypeLoamy, models.SoilTypeSilty},
}

var defaultSoilPreference = []models.SoilType{models.SoilTypeLoamy}

// cropDetail 作物的优势、挑战、品种和播种季节
type cropDetail struct {
	advantages []string
	challenges []string
	variety    string
	season     string
}

type cropDetailProvider func(s *models.SoilSample) cropDetail

// 只有玉米和小麦定义了详情，其余作物返回空详情
var cropDetails = map[string]cropDetailProvider{
	"Corn":  cornDetail,
	"Wheat": wheatDetail,
}

func cornDetail(s *models.SoilSample) cropDetail {
	d := cropDetail{
		advantages: []string{"Good nitrogen levels for corn growth"},
		challenges: []string{},
		variety:    "Select based on local climate",
		season:     "Spring",
	}
	if s.Phosphorus < advisoryBands.Phosphorus.Min {
		d.challenges = append(d.challenges, "Phosphorus levels may limit root development")
	}
	return d
}

func wheatDetail(s *models.SoilSample) cropDetail {
	d := cropDetail{
		advantages: []string{"Suitable pH range for wheat"},
		challenges: []string{},
		variety:    "Winter wheat varieties",
		season:     "Fall",
	}
	if s.Potassium < advisoryBands.Potassium.Min {
		d.challenges = append(d.challenges, "Potassium levels may affect grain quality")
	}
	return d
}

// detailFor 查找作物详情；没有定义时返回空列表和空字段
func detailFor(crop string, s *models.SoilSample) (cropDetail, bool) {
	provider, ok := cropDetails[crop]
	if !ok {
		return cropDetail{advantages: []string{}, challenges: []string{}}, false
	}
	return provider(s), true
}

// CropPHScore 作物 pH 适宜度：10/7/4
func CropPHScore(ph float64, crop string) float64 {
	fit, ok := cropPHFit[crop]
	if !ok {
		fit = defaultPHFit
	}
	switch {
	case fit.optimal.Contains(ph):
		return 10.0
	case fit.acceptable.Contains(ph):
		return 7.0
	default:
		return 4.0
	}
}

// CropNutrientScore 氮磷钾宽分档平均，与作物无关
func CropNutrientScore(s *models.SoilSample) float64 {
	score := ScoreWide(s.Nitrogen, healthBands.Nitrogen)
	score += ScoreWide(s.Phosphorus, healthBands.Phosphorus)
	score += ScoreWide(s.Potassium, healthBands.Potassium)
	return score / 3
}

// CropSoilTypeScore 偏好土壤得10分，其余7分
func CropSoilTypeScore(soilType models.SoilType, crop string) float64 {
	preferred, ok := cropSoilPreference[crop]
	if !ok {
		preferred = defaultSoilPreference
	}
	if slices.Contains(preferred, soilType) {
		return 10.0
	}
	return 7.0
}

// EvaluateCrops 按目录顺序评估每种作物
func EvaluateCrops(s *models.SoilSample) []models.CropSuitability {
	nutrient := CropNutrientScore(s)
	out := make([]models.CropSuitability, 0, len(CropCatalog))
	for _, crop := range CropCatalog {
		score := (CropPHScore(s.PH, crop) + nutrient + CropSoilTypeScore(s.SoilType, crop)) / 3
		detail, _ := detailFor(crop, s)
		out = append(out, models.CropSuitability{
			CropName:           crop,
			SuitabilityScore:   score,
			Advantages:         detail.advantages,
			Challenges:         detail.challenges,
			RecommendedVariety: detail.variety,
			PlantingSeason:     detail.season,
		})
	}
	return out
}
