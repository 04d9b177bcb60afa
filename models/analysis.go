package models

// Priority 施肥建议优先级
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Severity 环境影响严重程度，目前只会出现这两个值
type Severity string

const (
	SeverityModerate Severity = "Moderate"
	SeverityHigh     Severity = "High"
)

// AssessmentTier 总体评价等级
type AssessmentTier string

const (
	TierExcellent AssessmentTier = "Excellent"
	TierGood      AssessmentTier = "Good"
	TierFair      AssessmentTier = "Fair"
	TierPoor      AssessmentTier = "Poor"
)

// FertilizerRecommendation 施肥（改良）建议
type FertilizerRecommendation struct {
	Name              string   `json:"name"`
	Amount            string   `json:"amount"`
	Frequency         string   `json:"frequency"`
	Benefits          string   `json:"benefits"`
	Notes             string   `json:"notes"`
	Priority          Priority `json:"priority"`
	ApplicationMethod string   `json:"applicationMethod"`
	BestTimeToApply   string   `json:"bestTimeToApply"`
	CompatibleCrops   []string `json:"compatibleCrops"`
	IncompatibleCrops []string `json:"incompatibleCrops"`
}

// CropSuitability 作物适宜性
type CropSuitability struct {
	CropName           string   `json:"cropName"`
	SuitabilityScore   float64  `json:"suitabilityScore"`
	Advantages         []string `json:"advantages"`
	Challenges         []string `json:"challenges"`
	RecommendedVariety string   `json:"recommendedVariety,omitempty"`
	PlantingSeason     string   `json:"plantingSeason,omitempty"`
}

// EnvironmentalImpact 环境影响
type EnvironmentalImpact struct {
	ImpactType           string   `json:"impactType"`
	Description          string   `json:"description"`
	Severity             Severity `json:"severity"`
	MitigationStrategies []string `json:"mitigationStrategies"`
	LongTermEffect       string   `json:"longTermEffect"`
}

// SoilAnalysisResult 一次分析的完整结果，返回后不再修改
type SoilAnalysisResult struct {
	Sample                  SoilSample                 `json:"sample"`
	HealthScore             float64                    `json:"healthScore"`
	AssessmentTier          AssessmentTier             `json:"assessmentTier"`
	OverallAssessment       string                     `json:"overallAssessment"`
	TextureClass            string                     `json:"textureClass"`
	Recommendations         []FertilizerRecommendation `json:"recommendations"`
	ImprovementAreas        []string                   `json:"improvementAreas"`
	NutrientScores          map[string]float64         `json:"nutrientScores"`
	SeasonalRecommendations map[string]string          `json:"seasonalRecommendations"`
	CropSuitability         []CropSuitability          `json:"cropSuitability"`
	EnvironmentalImpacts    []EnvironmentalImpact      `json:"environmentalImpacts"`
}

// AnalysisRecord 持久化的分析记录
type AnalysisRecord struct {
	ID        string             `json:"id"`
	UserID    int                `json:"userId"`
	Timestamp string             `json:"timestamp"`
	Result    SoilAnalysisResult `json:"result"`
}
