// Package report 把分析记录导出为 PDF 或 Excel
package report

import (
	"fmt"
	"sort"
	"strings"

	"go-soilhealth/analyzer"
	"go-soilhealth/models"
)

// Format 导出格式
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// ParseFormat 未指定时默认 PDF
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatPDF:
		return FormatPDF, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported report format %q", s)
	}
}

// ContentType 响应头使用的 MIME 类型
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}

// FileName 下载文件名
func (f Format) FileName(rec *models.AnalysisRecord) string {
	return fmt.Sprintf("soil-analysis-%s.%s", rec.ID, f)
}

type keyValue struct {
	Key   string
	Value string
}

// seasonalRows 四季按固定顺序，当前季节建议放最后
func seasonalRows(result *models.SoilAnalysisResult) []keyValue {
	rows := make([]keyValue, 0, len(result.SeasonalRecommendations))
	for _, season := range models.Seasons {
		if text, ok := result.SeasonalRecommendations[string(season)]; ok {
			rows = append(rows, keyValue{string(season), text})
		}
	}
	if text, ok := result.SeasonalRecommendations[analyzer.CurrentSeasonKey]; ok {
		rows = append(rows, keyValue{analyzer.CurrentSeasonKey, text})
	}
	return rows
}

// nutrientScoreRows 按名称排序
func nutrientScoreRows(result *models.SoilAnalysisResult) []keyValue {
	names := make([]string, 0, len(result.NutrientScores))
	for name := range result.NutrientScores {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]keyValue, 0, len(names))
	for _, name := range names {
		rows = append(rows, keyValue{name, formatScore(result.NutrientScores[name])})
	}
	return rows
}

func formatScore(v float64) string {
	return fmt.Sprintf("%.1f/10", v)
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
