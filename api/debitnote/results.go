package debitnote

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"DebitNoteEngine/internal/session"
	"DebitNoteEngine/internal/xlsxio"
)

func runFromRequest(store *session.RunStore, w http.ResponseWriter, r *http.Request) (*session.Run, bool) {
	id := mux.Vars(r)["id"]
	run, ok := store.Get(id)
	if !ok {
		http.Error(w, "Run not found: "+id, http.StatusNotFound)
		return nil, false
	}
	return run, true
}

func writeTable(w http.ResponseWriter, header []string, rows [][]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"header":  header,
		"rows":    rows,
	})
}

// Handler: GetInterestDetail returns the interest table of a run, in the
// same column order as the downloaded sheet.
func GetInterestDetail(store *session.RunStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		run, ok := runFromRequest(store, w, r)
		if !ok {
			return
		}
		rows := make([][]interface{}, 0, len(run.Result.Interest))
		for _, rec := range run.Result.Interest {
			rows = append(rows, xlsxio.InterestRow(rec))
		}
		writeTable(w, xlsxio.InterestHeader, rows)
	}
}

// Handler: GetDebitNotes returns the debit-note table of a run.
func GetDebitNotes(store *session.RunStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		run, ok := runFromRequest(store, w, r)
		if !ok {
			return
		}
		rows := make([][]interface{}, 0, len(run.Result.Notes))
		for _, n := range run.Result.Notes {
			rows = append(rows, xlsxio.DebitNoteRow(n))
		}
		writeTable(w, xlsxio.DebitNoteHeader, rows)
	}
}

// Handler: GetRunSummary returns the headline metrics for a run.
func GetRunSummary(store *session.RunStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		run, ok := runFromRequest(store, w, r)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"summary": summarize(run),
		})
	}
}

type customerInterest struct {
	Customer string `json:"customer"`
	Interest string `json:"interest"`
}

type runSummary struct {
	RunID            string             `json:"run_id"`
	Filename         string             `json:"filename"`
	CreatedAt        string             `json:"created_at"`
	TransactionCount int                `json:"transaction_count"`
	TotalInterest    string             `json:"total_interest"`
	AvgInterest      string             `json:"avg_interest"`
	MaxInterest      string             `json:"max_interest"`
	MinInterest      string             `json:"min_interest"`
	NoteCount        int                `json:"note_count"`
	NotesGrandTotal  int64              `json:"notes_grand_total"`
	TopCustomers     []customerInterest `json:"top_customers"`
}

func summarize(run *session.Run) runSummary {
	s := runSummary{
		RunID:            run.ID,
		Filename:         run.Filename,
		CreatedAt:        run.CreatedAt.Format("2006-01-02 15:04:05"),
		TransactionCount: len(run.Result.Interest),
		NoteCount:        len(run.Result.Notes),
		TopCustomers:     []customerInterest{},
	}

	total := decimal.Zero
	var max, min decimal.Decimal
	byCustomer := make(map[string]decimal.Decimal)
	for i, rec := range run.Result.Interest {
		total = total.Add(rec.InterestAmount)
		if i == 0 || rec.InterestAmount.GreaterThan(max) {
			max = rec.InterestAmount
		}
		if i == 0 || rec.InterestAmount.LessThan(min) {
			min = rec.InterestAmount
		}
		byCustomer[rec.CustomerName] = byCustomer[rec.CustomerName].Add(rec.InterestAmount)
	}
	s.TotalInterest = total.StringFixed(2)
	s.MaxInterest = max.StringFixed(2)
	s.MinInterest = min.StringFixed(2)
	if len(run.Result.Interest) > 0 {
		avg := total.Div(decimal.NewFromInt(int64(len(run.Result.Interest)))).Round(2)
		s.AvgInterest = avg.StringFixed(2)
	} else {
		s.AvgInterest = "0.00"
	}

	for _, n := range run.Result.Notes {
		s.NotesGrandTotal += n.Total
	}

	names := make([]string, 0, len(byCustomer))
	for name := range byCustomer {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := byCustomer[names[i]], byCustomer[names[j]]
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return names[i] < names[j]
	})
	if len(names) > 5 {
		names = names[:5]
	}
	for _, name := range names {
		s.TopCustomers = append(s.TopCustomers, customerInterest{
			Customer: name,
			Interest: byCustomer[name].StringFixed(2),
		})
	}
	return s
}
