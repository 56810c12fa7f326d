package textures

import (
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
)

// Contact sheet layout on A4 portrait, millimetres.
const (
	sheetMargin  = 15.0
	sheetCell    = 85.0
	sheetGutter  = 10.0
	sheetCaption = 6.0
)

// WriteContactSheet renders the textures present on disk after a run
// (saved or skipped results) into a captioned PDF grid for review.
// Failed results are omitted. It is an error if no texture is present.
func WriteContactSheet(path string, results []Result) error {
	present := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Outcome != OutcomeSaved && r.Outcome != OutcomeSkipped {
			continue
		}
		if _, err := os.Stat(r.Path); err != nil {
			continue
		}
		present = append(present, r)
	}
	if len(present) == 0 {
		return fmt.Errorf("no textures available for contact sheet")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Zone textures", false)
	pdf.SetFont("Helvetica", "", 9)

	pageW, pageH := pdf.GetPageSize()
	cols := int((pageW - 2*sheetMargin + sheetGutter) / (sheetCell + sheetGutter))
	if cols < 1 {
		cols = 1
	}
	rowH := sheetCell + sheetCaption + sheetGutter

	for i, r := range present {
		col := i % cols
		row := i / cols
		rowsPerPage := int((pageH - 2*sheetMargin) / rowH)
		if rowsPerPage < 1 {
			rowsPerPage = 1
		}
		if col == 0 && row%rowsPerPage == 0 {
			pdf.AddPage()
		}
		x := sheetMargin + float64(col)*(sheetCell+sheetGutter)
		y := sheetMargin + float64(row%rowsPerPage)*rowH

		opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
		pdf.ImageOptions(r.Path, x, y, sheetCell, sheetCell, false, opts, 0, "")
		pdf.Text(x, y+sheetCell+sheetCaption-1.5, r.Name)
	}
	if pdf.Err() {
		return fmt.Errorf("render contact sheet: %w", pdf.Error())
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write contact sheet %s: %w", path, err)
	}
	return nil
}
