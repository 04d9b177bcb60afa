package models

import (
	"errors"
	"fmt"
	"strings"
)

// SoilType 土壤类型
type SoilType string

const (
	SoilTypeClay   SoilType = "CLAY"
	SoilTypeSandy  SoilType = "SANDY"
	SoilTypeLoamy  SoilType = "LOAMY"
	SoilTypeSilty  SoilType = "SILTY"
	SoilTypePeaty  SoilType = "PEATY"
	SoilTypeChalky SoilType = "CHALKY"
)

// Season 采样季节
type Season string

const (
	SeasonSpring Season = "SPRING"
	SeasonSummer Season = "SUMMER"
	SeasonAutumn Season = "AUTUMN"
	SeasonWinter Season = "WINTER"
)

// Seasons 四个标准季节，顺序固定
var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}

// ErrUnknownSeason 季节字段无法解析
var ErrUnknownSeason = errors.New("unknown season")

// ParseSeason 解析季节字段，空字符串表示未设置
func ParseSeason(s string) (Season, error) {
	v := Season(strings.ToUpper(strings.TrimSpace(s)))
	if v == "" {
		return "", nil
	}
	for _, season := range Seasons {
		if v == season {
			return season, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSeason, s)
}

// SoilSample 一次采样的土壤测定数据
type SoilSample struct {
	PH                     float64  `json:"ph"`
	Nitrogen               float64  `json:"nitrogen"`
	Phosphorus             float64  `json:"phosphorus"`
	Potassium              float64  `json:"potassium"`
	OrganicMatter          float64  `json:"organicMatter"`
	Moisture               float64  `json:"moisture"`
	Temperature            float64  `json:"temperature"`
	BulkDensity            float64  `json:"bulkDensity"`
	CationExchangeCapacity float64  `json:"cationExchangeCapacity"`
	SoilType               SoilType `json:"soilType" binding:"required,oneof=CLAY SANDY LOAMY SILTY PEATY CHALKY"`
	Location               string   `json:"location"`
	SampleDepth            string   `json:"sampleDepth"`
	CropType               string   `json:"cropType"`
	Season                 string   `json:"season,omitempty"`

	// 微量元素 (ppm)
	Iron      float64 `json:"iron"`
	Zinc      float64 `json:"zinc"`
	Copper    float64 `json:"copper"`
	Manganese float64 `json:"manganese"`

	// 质地百分比，三者之和应为100
	SandPercentage float64 `json:"sandPercentage"`
	SiltPercentage float64 `json:"siltPercentage"`
	ClayPercentage float64 `json:"clayPercentage"`
}

// CropNames 拆分 cropType 中以逗号分隔的作物名称
func (s *SoilSample) CropNames() []string {
	var names []string
	for _, part := range strings.Split(s.CropType, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
