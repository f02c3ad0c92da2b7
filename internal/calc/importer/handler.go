// Package importer accepts an XLSX workbook of girder inputs, one row
// per bridge, and runs them as a batch.
package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"Girder/internal/calc/batch"
	"Girder/internal/calc/girder"
)

type Handler struct{}

func (h *Handler) Girders(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var items []girder.Input
	for i := 1; i < len(rows); i++ {
		input, err := parseRow(rows[i])
		if err != nil {
			continue
		}
		items = append(items, input)
	}
	if len(items) == 0 {
		http.Error(w, "No valid rows", http.StatusBadRequest)
		return
	}

	res := batch.Calculate(r.Context(), batch.Input{Items: items})
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// expected columns: bridge, span_mm, num_girders, girder_spacing_mm,
// steel_grade, load_class, lanes_loaded(optional)
func parseRow(row []string) (girder.Input, error) {
	if len(row) < 6 {
		return girder.Input{}, fmt.Errorf("bad row")
	}
	span, err := toFloat(row[1])
	if err != nil {
		return girder.Input{}, err
	}
	girders, err := toFloat(row[2])
	if err != nil {
		return girder.Input{}, err
	}
	spacing, err := toFloat(row[3])
	if err != nil {
		return girder.Input{}, err
	}
	lanes := 0.0
	if len(row) > 6 && row[6] != "" {
		lanes, _ = toFloat(row[6])
	}
	return girder.Input{
		Bridge:          row[0],
		SpanMM:          span,
		NumGirders:      int(girders),
		GirderSpacingMM: spacing,
		SteelGrade:      row[4],
		LoadClass:       row[5],
		LanesLoaded:     int(lanes),
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
