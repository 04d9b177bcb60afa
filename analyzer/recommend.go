package analyzer

import "go-soilhealth/models"

// 规则编号，同时也是建议文本表的键
const (
	ruleLime        = "lime"
	ruleSulfur      = "sulfur"
	ruleNitrogen    = "nitrogen"
	rulePhosphate   = "phosphate"
	rulePotassium   = "potassium"
	ruleCompost     = "compost"
	ruleGypsum      = "gypsum"
	ruleMulch       = "mulch"
	ruleIronChelate = "iron_chelate"
	ruleZincSulfate = "zinc_sulfate"
	ruleMaintenance = "maintenance"
)

type recommendationRule struct {
	id    string
	fires func(s *models.SoilSample, healthScore float64) bool
}

// 规则按此顺序求值，互不排斥
var recommendationRules = []recommendationRule{
	{ruleLime, func(s *models.SoilSample, _ float64) bool { return s.PH < limeThresholdPH }},
	{ruleSulfur, func(s *models.SoilSample, _ float64) bool { return s.PH > sulfurThresholdPH }},
	{ruleNitrogen, func(s *models.SoilSample, _ float64) bool { return s.Nitrogen < advisoryBands.Nitrogen.Min }},
	{rulePhosphate, func(s *models.SoilSample, _ float64) bool { return s.Phosphorus < advisoryBands.Phosphorus.Min }},
	{rulePotassium, func(s *models.SoilSample, _ float64) bool { return s.Potassium < advisoryBands.Potassium.Min }},
	{ruleCompost, func(s *models.SoilSample, _ float64) bool { return s.OrganicMatter < advisoryBands.OrganicMatter.Min }},
	{ruleGypsum, func(s *models.SoilSample, _ float64) bool { return s.SoilType == models.SoilTypeClay }},
	{ruleMulch, func(s *models.SoilSample, _ float64) bool { return s.SoilType == models.SoilTypeSandy }},
	{ruleIronChelate, func(s *models.SoilSample, _ float64) bool { return s.Iron < advisoryBands.Iron.Min }},
	{ruleZincSulfate, func(s *models.SoilSample, _ float64) bool { return s.Zinc < advisoryBands.Zinc.Min }},
	{ruleMaintenance, func(_ *models.SoilSample, healthScore float64) bool { return healthScore > maintenanceScore }},
}

var fertilizerTable = map[string]models.FertilizerRecommendation{
	ruleLime: {
		Name:              "Agricultural Lime",
		Amount:            "50-100 lbs per 1000 sq ft",
		Frequency:         "Once per season",
		Benefits:          "Raises soil pH to reduce acidity",
		Notes:             "Apply evenly and water thoroughly",
		Priority:          models.PriorityHigh,
		ApplicationMethod: "Broadcast and incorporate into topsoil",
		BestTimeToApply:   "Fall, several months before planting",
		CompatibleCrops:   []string{"Corn", "Wheat", "Soybeans"},
		IncompatibleCrops: []string{"Blueberries", "Potatoes"},
	},
	ruleSulfur: {
		Name:              "Sulfur",
		Amount:            "10-20 lbs per 1000 sq ft",
		Frequency:         "Once per season",
		Benefits:          "Lowers soil pH to reduce alkalinity",
		Notes:             "May take several months to see full effect",
		Priority:          models.PriorityHigh,
		ApplicationMethod: "Broadcast and incorporate into topsoil",
		BestTimeToApply:   "Early spring or fall",
		CompatibleCrops:   []string{"Potatoes", "Blueberries"},
		IncompatibleCrops: []string{},
	},
	ruleNitrogen: {
		Name:              "Nitrogen-rich Fertilizer",
		Amount:            "1-2 lbs per 1000 sq ft",
		Frequency:         "Every 4-6 weeks during growing season",
		Benefits:          "Promotes leaf growth and green color",
		Notes:             "Water thoroughly after application to prevent burning",
		Priority:          models.PriorityHigh,
		ApplicationMethod: "Side-dress or broadcast",
		BestTimeToApply:   "During active growth",
		CompatibleCrops:   []string{"Corn", "Wheat", "Rice", "Cotton"},
		IncompatibleCrops: []string{"Soybeans"},
	},
	rulePhosphate: {
		Name:              "Phosphate Fertilizer",
		Amount:            "2-3 lbs per 1000 sq ft",
		Frequency:         "Every 8-10 weeks",
		Benefits:          "Promotes root development and flowering",
		Notes:             "Work into soil rather than surface application for best results",
		Priority:          models.PriorityMedium,
		ApplicationMethod: "Band or incorporate into root zone",
		BestTimeToApply:   "At or before planting",
		CompatibleCrops:   []string{},
		IncompatibleCrops: []string{},
	},
	rulePotassium: {
		Name:              "Potassium-rich Fertilizer",
		Amount:            "1-2 lbs per 1000 sq ft",
		Frequency:         "Every 6-8 weeks",
		Benefits:          "Improves overall plant vigor and disease resistance",
		Notes:             "Particularly important for fruit and root development",
		Priority:          models.PriorityMedium,
		ApplicationMethod: "Broadcast and incorporate",
		BestTimeToApply:   "Before planting",
		CompatibleCrops:   []string{},
		IncompatibleCrops: []string{},
	},
	ruleCompost: {
		Name:              "Compost",
		Amount:            "1-2 inches layer",
		Frequency:         "Twice per year",
		Benefits:          "Improves soil structure, water retention, and nutrient availability",
		Notes:             "Work into top 4-6 inches of soil if possible",
		Priority:          models.PriorityHigh,
		ApplicationMethod: "Top-dress and work into soil",
		BestTimeToApply:   "Spring and fall",
		CompatibleCrops:   []string{},
		IncompatibleCrops: []string{},
	},
	ruleGypsum: {
		Name:              "Gypsum",
		Amount:            "40 lbs per 1000 sq ft",
		Frequency:         "Once per year",
		Benefits:          "Improves clay soil structure and drainage",
		Notes:             "Best applied in fall or early spring",
		Priority:          models.PriorityMedium,
		ApplicationMethod: "Broadcast over surface",
		BestTimeToApply:   "Fall or early spring",
		CompatibleCrops:   []string{},
		IncompatibleCrops: []string{},
	},
	ruleMulch: {
		Name:              "Organic Mulch",
		Amount:            "3-4 inch layer",
		Frequency:         "Twice per year",
		Benefits:          "Improves water retention in sandy soils",
		Notes:             "Reapply as it breaks down",
		Priority:          models.PriorityMedium,
		ApplicationMethod: "Spread over soil surface",
		BestTimeToApply:   "Late spring",
		CompatibleCrops:   []string{},
		IncompatibleCrops: []string{},
	},
	ruleIronChelate: {
		Name:              "Iron Chelate",
		Amount:            "1-2 oz per 1000 sq ft",
		Frequency:         "Every 4-6 weeks during growing season",
		Benefits:          "Corrects iron deficiency",
		Notes:             "Apply as foliar spray for quick results",
		Priority:          models.PriorityMedium,
		ApplicationMethod: "Foliar spray",
		BestTimeToApply:   "Early morning during growing season",
		CompatibleCrops:   []string{},
		IncompatibleCrops: []string{},
	},
	ruleZincSulfate: {
		Name:              "Zinc Sulfate",
		Amount:            "1-2 lbs per 1000 sq ft",
		Frequency:         "Once per year",
		Benefits:          "Corrects zinc deficiency",
		Notes:             "Best applied in early spring",
		Priority:          models.PriorityMedium,
		ApplicationMethod: "Soil application",
		BestTimeToApply:   "Early spring",
		CompatibleCrops:   []string{"Corn", "Rice"},
		IncompatibleCrops: []string{},
	},
	ruleMaintenance: {
		Name:              "Balanced Fertilizer (10-10-10)",
		Amount:            "1 lb per 1000 sq ft",
		Frequency:         "Every 8-10 weeks during growing season",
		Benefits:          "Maintains overall soil fertility",
		Notes:             "Reduce frequency for native plants",
		Priority:          models.PriorityLow,
		ApplicationMethod: "Broadcast",
		BestTimeToApply:   "During growing season",
		CompatibleCrops:   []string{},
		IncompatibleCrops: []string{},
	},
}

// Recommend 依次求值所有规则，结果顺序即规则顺序而非优先级
func Recommend(s *models.SoilSample, healthScore float64) []models.FertilizerRecommendation {
	out := make([]models.FertilizerRecommendation, 0, len(recommendationRules))
	for _, r := range recommendationRules {
		if !r.fires(s, healthScore) {
			continue
		}
		out = append(out, cloneRecommendation(fertilizerTable[r.id]))
	}
	return out
}

// 复制切片字段，调用方修改结果不会影响规则表
func cloneRecommendation(r models.FertilizerRecommendation) models.FertilizerRecommendation {
	r.CompatibleCrops = append([]string{}, r.CompatibleCrops...)
	r.IncompatibleCrops = append([]string{}, r.IncompatibleCrops...)
	return r
}
