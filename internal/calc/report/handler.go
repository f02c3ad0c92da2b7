package report

import (
	"encoding/json"
	"net/http"

	"Girder/internal/calc/girder"
)

type Handler struct{}

// Generate runs the analysis for the posted input and streams the PDF.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input girder.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	res, err := girder.Calculate(r.Context(), input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf := Build(res)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"girder-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
