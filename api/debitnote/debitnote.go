package debitnote

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"DebitNoteEngine/internal/config"
	"DebitNoteEngine/internal/session"
)

// StartDebitNoteService wires the run store and routes and serves until
// the process exits.
func StartDebitNoteService(cfg map[string]interface{}) {
	port := intFromConfig(cfg, "port", config.DefaultServicePort)
	ttlMinutes := intFromConfig(cfg, "run_ttl_minutes", config.DefaultRunTTLMinutes)
	schedule := stringFromConfig(cfg, "sweep_schedule", config.DefaultSweepSchedule)

	store := session.NewRunStore(time.Duration(ttlMinutes) * time.Minute)
	if err := store.StartSweeper(schedule); err != nil {
		log.Fatalf("Debit Note Service failed to start sweeper: %v", err)
	}

	log.Printf("Debit Note Service started on :%d", port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), newRouter(store)); err != nil {
		log.Fatalf("Debit Note Service failed: %v", err)
	}
}

func newRouter(store *session.RunStore) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/debitnote/upload", UploadAndProcess(store)).Methods("POST")
	router.HandleFunc("/debitnote/runs/{id}/interest", GetInterestDetail(store)).Methods("GET")
	router.HandleFunc("/debitnote/runs/{id}/notes", GetDebitNotes(store)).Methods("GET")
	router.HandleFunc("/debitnote/runs/{id}/summary", GetRunSummary(store)).Methods("GET")
	router.HandleFunc("/debitnote/runs/{id}/download", DownloadWorkbook(store)).Methods("GET")
	return router
}

func intFromConfig(cfg map[string]interface{}, key string, def int) int {
	switch v := cfg[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

func stringFromConfig(cfg map[string]interface{}, key, def string) string {
	if s, ok := cfg[key].(string); ok && s != "" {
		return s
	}
	return def
}
