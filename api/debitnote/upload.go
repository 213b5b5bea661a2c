package debitnote

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"DebitNoteEngine/internal/config"
	"DebitNoteEngine/internal/logger"
	"DebitNoteEngine/internal/pipeline"
	"DebitNoteEngine/internal/session"
	"DebitNoteEngine/internal/xlsxio"
)

// Handler: UploadAndProcess runs the full pipeline over one uploaded
// receivables export and stores the result under a fresh run id.
// Configuration overrides arrive as form fields next to the file.
func UploadAndProcess(store *session.RunStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(config.MaxUploadBytes); err != nil {
			http.Error(w, "Failed to parse multipart form", http.StatusBadRequest)
			return
		}
		cfg, err := configFromForm(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		files := r.MultipartForm.File["file"]
		if len(files) == 0 {
			http.Error(w, "No file uploaded", http.StatusBadRequest)
			return
		}
		fileHeader := files[0]
		file, err := fileHeader.Open()
		if err != nil {
			http.Error(w, "Failed to open file: "+fileHeader.Filename, http.StatusBadRequest)
			return
		}
		rows, err := xlsxio.ParseUpload(file, xlsxio.Ext(fileHeader.Filename))
		file.Close()
		if err != nil {
			http.Error(w, "Invalid file "+fileHeader.Filename+": "+err.Error(), http.StatusBadRequest)
			return
		}

		res, err := pipeline.Run(rows, cfg)
		if err != nil {
			// Missing columns and bad parameters are both caller-fixable.
			var missing *pipeline.MissingColumnError
			var badCfg *pipeline.ConfigError
			if errors.As(err, &missing) || errors.As(err, &badCfg) {
				http.Error(w, err.Error(), http.StatusBadRequest)
			} else {
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}

		run := store.Put(res, cfg, fileHeader.Filename)
		if logger.GlobalLogger != nil {
			logger.GlobalLogger.LogAudit(fmt.Sprintf(
				"run %s: %s -> %d interest rows, %d debit notes",
				run.ID, run.Filename, len(res.Interest), len(res.Notes)))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"run_id":  run.ID,
			"summary": summarize(run),
		})
	}
}

// configFromForm overlays any form-provided parameters on the defaults.
// Validation proper happens inside the pipeline; this only rejects
// values that do not parse at all.
func configFromForm(r *http.Request) (pipeline.Config, error) {
	cfg := pipeline.DefaultConfig()
	if v := r.FormValue("per_day_rate"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid per_day_rate: %q", v)
		}
		cfg.PerDayRate = decimal.NewFromFloat(f)
	}
	intFields := []struct {
		name string
		dst  *int
	}{
		{"due_days_threshold", &cfg.DueDaysThreshold},
		{"max_working_days", &cfg.MaxWorkingDays},
		{"starting_number", &cfg.StartingNumber},
		{"opening_balance_age", &cfg.OpeningBalanceAge},
	}
	for _, f := range intFields {
		if v := r.FormValue(f.name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return cfg, fmt.Errorf("invalid %s: %q", f.name, v)
			}
			*f.dst = n
		}
	}
	if v := r.FormValue("invoice_prefix"); v != "" {
		cfg.InvoicePrefix = v
	}
	if v := r.FormValue("description"); v != "" {
		cfg.Description = v
	}
	if v := r.FormValue("invoice_date"); v != "" {
		cfg.InvoiceDate = v
	}
	return cfg, nil
}
