package debitnote

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"DebitNoteEngine/internal/session"
	"DebitNoteEngine/internal/xlsxio"
)

// Handler: DownloadWorkbook streams a run's two result tables as one
// xlsx workbook, interest detail first.
func DownloadWorkbook(store *session.RunStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		run, ok := runFromRequest(store, w, r)
		if !ok {
			return
		}
		f, err := xlsxio.BuildWorkbook(run.Result)
		if err != nil {
			http.Error(w, "Failed to build workbook: "+err.Error(), http.StatusInternalServerError)
			return
		}
		filename := fmt.Sprintf("debit_notes_%s.xlsx", time.Now().Format("20060102_150405"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		if err := f.Write(w); err != nil {
			log.Printf("workbook write failed for run %s: %v", run.ID, err)
		}
	}
}
