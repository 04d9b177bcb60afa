package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"go-soilhealth/models"
)

const (
	pdfFont       = "Arial"
	pdfLineHeight = 6.0
	pdfLabelWidth = 60.0
)

var pdfHeaderColor = [3]int{68, 114, 196}

type pdfWriter struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// WritePDF 生成分析报告 PDF
func WritePDF(w io.Writer, rec *models.AnalysisRecord) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 20, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetTitle("Soil Analysis Report", false)

	pw := &pdfWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pw.render(rec)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return pdf.Output(w)
}

func (p *pdfWriter) render(rec *models.AnalysisRecord) {
	result := &rec.Result
	sample := &result.Sample

	p.pdf.AddPage()
	p.pdf.SetFont(pdfFont, "B", 16)
	p.pdf.CellFormat(0, 10, "Soil Analysis Report", "", 1, "C", false, 0, "")
	p.pdf.Ln(4)

	p.section("Sample Information")
	p.rows([]keyValue{
		{"Analysis ID", rec.ID},
		{"Date", rec.Timestamp},
		{"Location", sample.Location},
		{"Soil Type", string(sample.SoilType)},
		{"Crop Type", joinOrDash(sample.CropNames())},
		{"Sample Depth", sample.SampleDepth},
		{"Season", sample.Season},
		{"Texture Class", result.TextureClass},
	})

	p.section("Soil Health Overview")
	p.rows([]keyValue{
		{"Health Score", formatScore(result.HealthScore)},
		{"Assessment", string(result.AssessmentTier)},
	})
	p.paragraph(result.OverallAssessment)

	p.section("Nutrient Levels")
	p.rows([]keyValue{
		{"pH", fmt.Sprintf("%.1f", sample.PH)},
		{"Nitrogen", fmt.Sprintf("%.1f ppm", sample.Nitrogen)},
		{"Phosphorus", fmt.Sprintf("%.1f ppm", sample.Phosphorus)},
		{"Potassium", fmt.Sprintf("%.1f ppm", sample.Potassium)},
		{"Organic Matter", fmt.Sprintf("%.1f %%", sample.OrganicMatter)},
		{"Moisture", fmt.Sprintf("%.1f %%", sample.Moisture)},
		{"Temperature", fmt.Sprintf("%.1f C", sample.Temperature)},
	})

	p.section("Micronutrients")
	p.rows([]keyValue{
		{"Iron", fmt.Sprintf("%.2f ppm", sample.Iron)},
		{"Zinc", fmt.Sprintf("%.2f ppm", sample.Zinc)},
		{"Copper", fmt.Sprintf("%.2f ppm", sample.Copper)},
		{"Manganese", fmt.Sprintf("%.2f ppm", sample.Manganese)},
	})
	p.rows(nutrientScoreRows(result))

	p.section("Crop Suitability")
	for _, crop := range result.CropSuitability {
		p.subheading(fmt.Sprintf("%s  %s", crop.CropName, formatScore(crop.SuitabilityScore)))
		p.rows([]keyValue{
			{"Advantages", joinOrDash(crop.Advantages)},
			{"Challenges", joinOrDash(crop.Challenges)},
		})
		if crop.RecommendedVariety != "" {
			p.rows([]keyValue{{"Variety", crop.RecommendedVariety}})
		}
		if crop.PlantingSeason != "" {
			p.rows([]keyValue{{"Planting Season", crop.PlantingSeason}})
		}
	}

	p.section("Environmental Impacts")
	if len(result.EnvironmentalImpacts) == 0 {
		p.paragraph("No significant environmental risks detected.")
	}
	for _, impact := range result.EnvironmentalImpacts {
		p.subheading(fmt.Sprintf("%s (%s)", impact.ImpactType, impact.Severity))
		p.paragraph(impact.Description)
		p.rows([]keyValue{
			{"Mitigation", joinOrDash(impact.MitigationStrategies)},
			{"Long-term Effect", impact.LongTermEffect},
		})
	}

	p.section("Seasonal Recommendations")
	p.rows(seasonalRows(result))

	p.section("Fertilizer Recommendations")
	for _, r := range result.Recommendations {
		p.subheading(fmt.Sprintf("%s [%s]", r.Name, r.Priority))
		p.rows([]keyValue{
			{"Amount", r.Amount},
			{"Frequency", r.Frequency},
			{"Benefits", r.Benefits},
			{"Method", r.ApplicationMethod},
			{"Best Time", r.BestTimeToApply},
			{"Notes", r.Notes},
		})
	}

	p.section("Improvement Areas")
	if len(result.ImprovementAreas) == 0 {
		p.paragraph("All monitored parameters are within the recommended range.")
	}
	for _, area := range result.ImprovementAreas {
		p.paragraph("- " + area)
	}
}

func (p *pdfWriter) section(title string) {
	p.pdf.Ln(3)
	p.pdf.SetFont(pdfFont, "B", 12)
	p.pdf.SetFillColor(pdfHeaderColor[0], pdfHeaderColor[1], pdfHeaderColor[2])
	p.pdf.SetTextColor(255, 255, 255)
	p.pdf.CellFormat(0, 8, p.tr(title), "", 1, "L", true, 0, "")
	p.pdf.SetTextColor(0, 0, 0)
	p.pdf.Ln(1)
}

func (p *pdfWriter) subheading(text string) {
	p.pdf.SetFont(pdfFont, "B", 10)
	p.pdf.CellFormat(0, pdfLineHeight, p.tr(text), "", 1, "L", false, 0, "")
}

func (p *pdfWriter) paragraph(text string) {
	p.pdf.SetFont(pdfFont, "", 10)
	p.pdf.MultiCell(0, pdfLineHeight, p.tr(text), "", "L", false)
}

func (p *pdfWriter) rows(rows []keyValue) {
	for _, row := range rows {
		p.pdf.SetFont(pdfFont, "B", 10)
		p.pdf.CellFormat(pdfLabelWidth, pdfLineHeight, p.tr(row.Key), "", 0, "L", false, 0, "")
		p.pdf.SetFont(pdfFont, "", 10)
		p.pdf.MultiCell(0, pdfLineHeight, p.tr(row.Value), "", "L", false)
	}
}
