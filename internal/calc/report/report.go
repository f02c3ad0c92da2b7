// Package report renders a girder verification run as a PDF design
// note: inputs, section, load effects, and the check table with the
// overall verdict.
package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"Girder/internal/calc/girder"
)

// Build lays out the report for one finished run.
func Build(res girder.Result) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	title := res.Input.Bridge
	if title == "" {
		title = "Plate Girder Verification"
	}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", res.Input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Codes: IRC:6-2017, IRC:24-2010, IS:800-2007")
	pdf.Ln(10)

	section(pdf, "Input")
	row(pdf, "Span", "%.1f m", res.Input.SpanMM/1000)
	row(pdf, "Girders", "%d @ %.0f mm", res.Input.NumGirders, res.Input.GirderSpacingMM)
	row(pdf, "Steel grade", "%s", res.Input.SteelGrade)
	row(pdf, "Live load", "%s, %d lane(s)", res.Input.LoadClass, res.Input.LanesLoaded)
	row(pdf, "Sizing", "%s", res.SizingMethod)
	pdf.Ln(4)

	section(pdf, "Section")
	g := res.Geometry
	row(pdf, "Web", "%.0f x %.0f mm", g.WebDepth, g.WebThickness)
	row(pdf, "Flanges", "%.0f x %.0f mm", g.FlangeWidth, g.FlangeThickness)
	row(pdf, "Overall depth", "%.0f mm", res.Section.TotalDepth)
	row(pdf, "Ixx", "%.3e mm4", res.Section.Ixx)
	row(pdf, "Classification", "%s", res.Section.Class)
	row(pdf, "Self weight", "%.2f kN/m", res.Section.WeightPerMeter())
	pdf.Ln(4)

	section(pdf, "Design Forces")
	row(pdf, "Dead load", "M = %.1f kNm, V = %.1f kN", res.DeadEffects.MomentKNM, res.DeadEffects.ShearKN)
	row(pdf, "Live load (with impact)", "M = %.1f kNm, V = %.1f kN", res.LiveEffects.MomentKNM, res.LiveEffects.ShearKN)
	row(pdf, "Impact factor", "%.3f", res.Envelope.ImpactFactor)
	row(pdf, "Factored moment", "%.1f kNm (%s)", res.Demand.MomentKNM, res.Demand.MomentCombination)
	row(pdf, "Factored shear", "%.1f kN (%s)", res.Demand.ShearKN, res.Demand.ShearCombination)
	pdf.Ln(4)

	section(pdf, "Checks")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(35, 7, "Check", "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 7, "Clause", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Demand", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Capacity", "1", 0, "R", false, 0, "")
	pdf.CellFormat(20, 7, "Ratio", "1", 0, "R", false, 0, "")
	pdf.CellFormat(20, 7, "Verdict", "1", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, c := range res.Checks {
		verdict := "PASS"
		if !c.Pass {
			verdict = "FAIL"
		}
		pdf.CellFormat(35, 7, c.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, c.Clause, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.1f", c.Demand), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.1f", c.Capacity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%.3f", c.Ratio), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 7, verdict, "1", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Overall: %s", res.Status))
	pdf.Ln(8)

	if len(res.Warnings) > 0 {
		pdf.SetFont("Helvetica", "", 10)
		for _, warn := range res.Warnings {
			pdf.MultiCell(0, 5, "- "+warn, "", "L", false)
		}
	}
	return pdf
}

func section(pdf *gofpdf.Fpdf, name string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, name)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
}

func row(pdf *gofpdf.Fpdf, label, format string, args ...any) {
	pdf.CellFormat(55, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf(format, args...), "", 1, "L", false, 0, "")
}
