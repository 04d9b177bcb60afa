package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"go-soilhealth/models"
)

// 工作表名称，顺序即输出顺序
const (
	SheetSummary         = "Summary"
	SheetRecommendations = "Recommendations"
	SheetCrops           = "Crops"
	SheetImpacts         = "Impacts"
	SheetSeasonal        = "Seasonal"
)

type sheet struct {
	name    string
	headers []string
	rows    [][]any
	widths  []float64
}

// WriteWorkbook 生成分析报告 Excel 工作簿
func WriteWorkbook(w io.Writer, rec *models.AnalysisRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, sh := range workbookSheets(rec) {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sh.name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			return err
		}
		if err := writeSheet(f, sh, headerStyle); err != nil {
			return fmt.Errorf("write sheet %s: %w", sh.name, err)
		}
	}

	return f.Write(w)
}

func writeSheet(f *excelize.File, sh sheet, headerStyle int) error {
	header := make([]any, len(sh.headers))
	for i, h := range sh.headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sh.name, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(sh.headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sh.name, "A1", last, headerStyle); err != nil {
		return err
	}

	for i, row := range sh.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sh.name, cell, &row); err != nil {
			return err
		}
	}

	for i, width := range sh.widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sh.name, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

func workbookSheets(rec *models.AnalysisRecord) []sheet {
	result := &rec.Result
	sample := &result.Sample

	summary := sheet{
		name:    SheetSummary,
		headers: []string{"Field", "Value"},
		widths:  []float64{24, 60},
		rows: [][]any{
			{"Analysis ID", rec.ID},
			{"Date", rec.Timestamp},
			{"Location", sample.Location},
			{"Soil Type", string(sample.SoilType)},
			{"Crop Type", joinOrDash(sample.CropNames())},
			{"Texture Class", result.TextureClass},
			{"Health Score", result.HealthScore},
			{"Assessment", string(result.AssessmentTier)},
			{"Overall Assessment", result.OverallAssessment},
			{"pH", sample.PH},
			{"Nitrogen (ppm)", sample.Nitrogen},
			{"Phosphorus (ppm)", sample.Phosphorus},
			{"Potassium (ppm)", sample.Potassium},
			{"Organic Matter (%)", sample.OrganicMatter},
			{"Moisture (%)", sample.Moisture},
			{"Temperature (C)", sample.Temperature},
		},
	}
	for _, kv := range nutrientScoreRows(result) {
		summary.rows = append(summary.rows, []any{kv.Key + " Score", kv.Value})
	}
	for _, area := range result.ImprovementAreas {
		summary.rows = append(summary.rows, []any{"Improvement Area", area})
	}

	recs := sheet{
		name:    SheetRecommendations,
		headers: []string{"Name", "Priority", "Amount", "Frequency", "Method", "Best Time", "Benefits", "Notes", "Compatible Crops", "Incompatible Crops"},
		widths:  []float64{30, 10, 26, 30, 30, 30, 40, 40, 26, 26},
	}
	for _, r := range result.Recommendations {
		recs.rows = append(recs.rows, []any{
			r.Name, string(r.Priority), r.Amount, r.Frequency, r.ApplicationMethod, r.BestTimeToApply,
			r.Benefits, r.Notes, joinOrDash(r.CompatibleCrops), joinOrDash(r.IncompatibleCrops),
		})
	}

	crops := sheet{
		name:    SheetCrops,
		headers: []string{"Crop", "Suitability Score", "Advantages", "Challenges", "Variety", "Planting Season"},
		widths:  []float64{14, 16, 40, 40, 28, 16},
	}
	for _, c := range result.CropSuitability {
		crops.rows = append(crops.rows, []any{
			c.CropName, c.SuitabilityScore, joinOrDash(c.Advantages), joinOrDash(c.Challenges),
			c.RecommendedVariety, c.PlantingSeason,
		})
	}

	impacts := sheet{
		name:    SheetImpacts,
		headers: []string{"Impact", "Severity", "Description", "Mitigation", "Long-term Effect"},
		widths:  []float64{18, 10, 44, 60, 40},
	}
	for _, im := range result.EnvironmentalImpacts {
		impacts.rows = append(impacts.rows, []any{
			im.ImpactType, string(im.Severity), im.Description, joinOrDash(im.MitigationStrategies), im.LongTermEffect,
		})
	}

	seasonal := sheet{
		name:    SheetSeasonal,
		headers: []string{"Season", "Recommendation"},
		widths:  []float64{18, 80},
	}
	for _, kv := range seasonalRows(result) {
		seasonal.rows = append(seasonal.rows, []any{kv.Key, kv.Value})
	}

	return []sheet{summary, recs, crops, impacts, seasonal}
}
