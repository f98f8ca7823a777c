package storage_test

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/omkumar23112003/course-selling-app/internal/platform/errors"
	"github.com/omkumar23112003/course-selling-app/internal/services/marketplace/storage"
	"github.com/omkumar23112003/course-selling-app/internal/services/marketplace/storage/memory"
)

type record struct {
	ID    string  `json:"id"`
	Price float64 `json:"price"`
}

func TestReadJSONMissingKey(t *testing.T) {
	t.Parallel()

	var got []record
	found, err := storage.ReadJSON(context.Background(), memory.New(), storage.KeyCourses, &got)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if found {
		t.Fatal("expected missing key")
	}
}

func TestWriteThenReadJSON(t *testing.T) {
	t.Parallel()

	kv := memory.New()
	ctx := context.Background()
	want := []record{{ID: "1", Price: 99.99}, {ID: "2", Price: 0}}
	if err := storage.WriteJSON(ctx, kv, storage.KeyCourses, want); err != nil {
		t.Fatalf("write: %v", err)
	}

	var got []record
	found, err := storage.ReadJSON(ctx, kv, storage.KeyCourses, &got)
	if err != nil || !found {
		t.Fatalf("read = found %v err %v", found, err)
	}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("read = %+v, want %+v", got, want)
	}
}

func TestReadJSONReportsCorruptValue(t *testing.T) {
	t.Parallel()

	kv := memory.New()
	ctx := context.Background()
	if err := kv.Put(ctx, storage.KeyStudents, []byte(`[{"id":`)); err != nil {
		t.Fatalf("put: %v", err)
	}

	var got []record
	_, err := storage.ReadJSON(ctx, kv, storage.KeyStudents, &got)
	if !errors.Is(err, apperrors.New(apperrors.CodeStorageCorrupt, "")) {
		t.Fatalf("read error = %v, want STORAGE_CORRUPT", err)
	}
	if msg := apperrors.UserMessage(err, "en-US"); msg != "Stored data for users is unreadable" {
		t.Fatalf("user message = %q", msg)
	}
}

func TestNilStoreIsRejected(t *testing.T) {
	t.Parallel()

	if err := storage.WriteJSON(context.Background(), nil, storage.KeyCourses, []record{}); err == nil {
		t.Fatal("expected nil store error")
	}
}
