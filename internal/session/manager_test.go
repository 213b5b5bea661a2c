package session

import (
	"testing"
	"time"

	"DebitNoteEngine/internal/pipeline"
)

func TestPutAndGet(t *testing.T) {
	store := NewRunStore(time.Hour)
	res := &pipeline.Result{}
	run := store.Put(res, pipeline.DefaultConfig(), "raw.xlsx")
	if run.ID == "" {
		t.Fatal("run id not assigned")
	}
	got, ok := store.Get(run.ID)
	if !ok {
		t.Fatal("stored run not found")
	}
	if got.Result != res {
		t.Error("run returned a different result")
	}
	if got.Filename != "raw.xlsx" {
		t.Errorf("filename = %q", got.Filename)
	}
}

func TestGetUnknown(t *testing.T) {
	store := NewRunStore(time.Hour)
	if _, ok := store.Get("nope"); ok {
		t.Fatal("unknown id should miss")
	}
}

func TestDistinctIDsPerRun(t *testing.T) {
	store := NewRunStore(time.Hour)
	a := store.Put(&pipeline.Result{}, pipeline.DefaultConfig(), "a.xlsx")
	b := store.Put(&pipeline.Result{}, pipeline.DefaultConfig(), "b.xlsx")
	if a.ID == b.ID {
		t.Fatal("two runs share an id")
	}
}

func TestExpiry(t *testing.T) {
	store := NewRunStore(-time.Second) // already expired on Put
	run := store.Put(&pipeline.Result{}, pipeline.DefaultConfig(), "a.xlsx")
	if _, ok := store.Get(run.ID); ok {
		t.Fatal("expired run should not be returned")
	}
}

func TestCleanupExpired(t *testing.T) {
	store := NewRunStore(-time.Second)
	store.Put(&pipeline.Result{}, pipeline.DefaultConfig(), "a.xlsx")
	store.Put(&pipeline.Result{}, pipeline.DefaultConfig(), "b.xlsx")
	if n := store.CleanupExpired(); n != 2 {
		t.Fatalf("cleaned %d runs, want 2", n)
	}
	if n := store.CleanupExpired(); n != 0 {
		t.Fatalf("second sweep cleaned %d, want 0", n)
	}
}
