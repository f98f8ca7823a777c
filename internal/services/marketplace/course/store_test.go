package course

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	apperrors "github.com/omkumar23112003/course-selling-app/internal/platform/errors"
	"github.com/omkumar23112003/course-selling-app/internal/services/marketplace/storage"
	"github.com/omkumar23112003/course-selling-app/internal/services/marketplace/storage/memory"
)

var fixedNow = time.Date(2026, time.October, 15, 23, 30, 0, 0, time.UTC)

func TestOpenSeedsSampleCoursesOnce(t *testing.T) {
	t.Parallel()

	kv := memory.New()
	ctx := context.Background()
	store, err := Open(ctx, kv)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	courses, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(courses) != 3 {
		t.Fatalf("seeded courses = %d, want 3", len(courses))
	}
	if _, found, _ := kv.Get(ctx, storage.KeyCourses); !found {
		t.Fatal("expected seed to be persisted immediately")
	}

	if _, err := Open(ctx, kv); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	persisted := readCourses(t, kv)
	if len(persisted) != 3 {
		t.Fatalf("courses after reopen = %d, want 3", len(persisted))
	}
}

func TestOpenDoesNotReseedEmptyCollection(t *testing.T) {
	t.Parallel()

	kv := memory.New()
	ctx := context.Background()
	store, err := Open(ctx, kv)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for _, c := range SampleCourses() {
		if err := store.Delete(ctx, c.ID); err != nil {
			t.Fatalf("delete %s: %v", c.ID, err)
		}
	}

	reopened, err := Open(ctx, kv)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	courses, _ := reopened.List(ctx)
	if len(courses) != 0 {
		t.Fatalf("courses after reopen = %d, want 0", len(courses))
	}
}

func TestAddAssignsIDAndDate(t *testing.T) {
	t.Parallel()

	store, kv := openTestStore(t)
	ctx := context.Background()

	input := newCourseInput()
	input.ID = "caller-id"
	input.CreatedAt = "1999-01-01"
	first, err := store.Add(ctx, input)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := store.Add(ctx, newCourseInput())
	if err != nil {
		t.Fatalf("add second: %v", err)
	}

	if first.ID == "" || first.ID == "caller-id" || first.ID == second.ID {
		t.Fatalf("ids = %q, %q", first.ID, second.ID)
	}
	if first.CreatedAt != "2026-10-15" {
		t.Fatalf("created at = %q, want 2026-10-15", first.CreatedAt)
	}

	persisted := readCourses(t, kv)
	if len(persisted) != 5 || persisted[3] != first || persisted[4] != second {
		t.Fatalf("persisted tail = %+v", persisted[3:])
	}
}

func TestAddSkipsCollidingGeneratedIDs(t *testing.T) {
	t.Parallel()

	ids := []string{"1", "2", "fresh"}
	store, err := Open(context.Background(), memory.New(), WithIDGenerator(func() (string, error) {
		next := ids[0]
		ids = ids[1:]
		return next, nil
	}))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	created, err := store.Add(context.Background(), newCourseInput())
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.ID != "fresh" {
		t.Fatalf("id = %q, want fresh", created.ID)
	}
}

func TestAddUsesDefaultImageWhenBlank(t *testing.T) {
	t.Parallel()

	picked := -1
	store, err := Open(context.Background(), memory.New(), WithImagePicker(func(n int) int {
		if n != len(DefaultImages()) {
			t.Errorf("image pool size = %d, want %d", n, len(DefaultImages()))
		}
		picked = 4
		return picked
	}))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	input := newCourseInput()
	input.Image = "  "
	created, err := store.Add(context.Background(), input)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.Image != DefaultImages()[picked] {
		t.Fatalf("image = %q, want pool entry %d", created.Image, picked)
	}

	input.Image = "https://example.com/cover.png"
	explicit, err := store.Add(context.Background(), input)
	if err != nil {
		t.Fatalf("add explicit: %v", err)
	}
	if explicit.Image != input.Image {
		t.Fatalf("image = %q, want caller image", explicit.Image)
	}
}

func TestDefaultImagePickIsInPool(t *testing.T) {
	t.Parallel()

	store, err := Open(context.Background(), memory.New())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	pool := DefaultImages()
	for i := 0; i < 20; i++ {
		input := newCourseInput()
		input.Image = ""
		created, err := store.Add(context.Background(), input)
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		found := false
		for _, image := range pool {
			found = found || image == created.Image
		}
		if !found {
			t.Fatalf("image %q not in default pool", created.Image)
		}
	}
}

func TestAddValidatesRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Course)
		field  string
	}{
		{name: "missing title", mutate: func(c *Course) { c.Title = "" }, field: "title"},
		{name: "negative price", mutate: func(c *Course) { c.Price = -1 }, field: "price"},
		{name: "unknown category", mutate: func(c *Course) { c.Category = "Cooking" }, field: "category"},
		{name: "empty category", mutate: func(c *Course) { c.Category = "" }, field: "category"},
		{name: "unknown level", mutate: func(c *Course) { c.Level = "Expert" }, field: "level"},
		{name: "bad image", mutate: func(c *Course) { c.Image = "not a url" }, field: "image"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store, kv := openTestStore(t)
			input := newCourseInput()
			tc.mutate(&input)

			_, err := store.Add(context.Background(), input)
			var domainErr *apperrors.Error
			if !errors.As(err, &domainErr) || domainErr.Code != apperrors.CodeInvalidArgument {
				t.Fatalf("add error = %v, want INVALID_ARGUMENT", err)
			}
			if domainErr.Metadata["Field"] != tc.field {
				t.Fatalf("field = %q, want %q", domainErr.Metadata["Field"], tc.field)
			}
			if got := len(readCourses(t, kv)); got != 3 {
				t.Fatalf("persisted courses = %d, want 3", got)
			}
		})
	}
}

func TestListViews(t *testing.T) {
	t.Parallel()

	store, _ := openTestStore(t)
	ctx := context.Background()
	draft := newCourseInput()
	draft.AuthorID = "admin2"
	draft.Published = false
	created, err := store.Add(ctx, draft)
	if err != nil {
		t.Fatalf("add draft: %v", err)
	}

	all, _ := store.List(ctx)
	if got := ids(all); fmt.Sprint(got) != fmt.Sprint([]string{"1", "2", "3", created.ID}) {
		t.Fatalf("list ids = %v", got)
	}
	published, _ := store.ListPublished(ctx)
	if got := ids(published); fmt.Sprint(got) != "[1 2 3]" {
		t.Fatalf("published ids = %v", got)
	}
	byAuthor, _ := store.ListByAuthor(ctx, "admin2")
	if got := ids(byAuthor); fmt.Sprint(got) != fmt.Sprint([]string{"3", created.ID}) {
		t.Fatalf("admin2 ids = %v", got)
	}
	none, _ := store.ListByAuthor(ctx, "Admin2")
	if len(none) != 0 {
		t.Fatalf("author match should be exact, got %v", ids(none))
	}
}

func TestListReturnsCopies(t *testing.T) {
	t.Parallel()

	store, _ := openTestStore(t)
	ctx := context.Background()
	first, _ := store.List(ctx)
	first[0].Title = "mutated"
	second, _ := store.List(ctx)
	if second[0].Title == "mutated" {
		t.Fatal("expected list to return a copy")
	}
}

func TestUpdateMergesFields(t *testing.T) {
	t.Parallel()

	store, kv := openTestStore(t)
	ctx := context.Background()
	price := 49.5
	published := false
	if err := store.Update(ctx, "2", Update{Price: &price, Published: &published}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, found, err := store.Get(ctx, "2")
	if err != nil || !found {
		t.Fatalf("get: found %v err %v", found, err)
	}
	want := SampleCourses()[1]
	want.Price = 49.5
	want.Published = false
	if got != want {
		t.Fatalf("updated = %+v, want %+v", got, want)
	}
	if persisted := readCourses(t, kv); persisted[1] != want {
		t.Fatalf("persisted = %+v, want %+v", persisted[1], want)
	}
}

func TestUpdateRejectsInvalidMerge(t *testing.T) {
	t.Parallel()

	store, kv := openTestStore(t)
	level := "Expert"
	err := store.Update(context.Background(), "1", Update{Level: &level})
	if apperrors.CodeOf(err) != apperrors.CodeInvalidArgument {
		t.Fatalf("update error = %v, want INVALID_ARGUMENT", err)
	}
	if persisted := readCourses(t, kv); persisted[0].Level != LevelIntermediate {
		t.Fatalf("level = %q, want unchanged", persisted[0].Level)
	}
}

func TestUpdateAndDeleteUnknownIDAreNoOps(t *testing.T) {
	t.Parallel()

	store, kv := openTestStore(t)
	ctx := context.Background()
	before, _, _ := kv.Get(ctx, storage.KeyCourses)

	title := "Ghost"
	if err := store.Update(ctx, "missing", Update{Title: &title}); err != nil {
		t.Fatalf("update missing: %v", err)
	}
	if err := store.Delete(ctx, "missing"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}

	after, _, _ := kv.Get(ctx, storage.KeyCourses)
	if string(before) != string(after) {
		t.Fatal("expected collection to stay unchanged")
	}
	courses, _ := store.List(ctx)
	if len(courses) != 3 {
		t.Fatalf("courses = %d, want 3", len(courses))
	}
}

func TestDeleteRemovesCourse(t *testing.T) {
	t.Parallel()

	store, kv := openTestStore(t)
	if err := store.Delete(context.Background(), "2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := ids(readCourses(t, kv)); fmt.Sprint(got) != "[1 3]" {
		t.Fatalf("persisted ids = %v, want [1 3]", got)
	}
}

func TestFailedWriteLeavesCacheUnchanged(t *testing.T) {
	t.Parallel()

	kv := &failingStore{Store: memory.New()}
	store, err := Open(context.Background(), kv)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	kv.failPut = true
	if err := store.Delete(context.Background(), "1"); err == nil {
		t.Fatal("expected write failure")
	}
	courses, _ := store.List(context.Background())
	if len(courses) != 3 {
		t.Fatalf("cached courses = %d, want 3", len(courses))
	}
}

func TestOpenPropagatesCorruptCollection(t *testing.T) {
	t.Parallel()

	kv := memory.New()
	if err := kv.Put(context.Background(), storage.KeyCourses, []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := Open(context.Background(), kv); apperrors.CodeOf(err) != apperrors.CodeStorageCorrupt {
		t.Fatalf("open error = %v, want STORAGE_CORRUPT", err)
	}
}

func TestCourseJSONRoundTrip(t *testing.T) {
	t.Parallel()

	for _, want := range append(SampleCourses(), Course{ID: "x", Price: 0, Published: false}) {
		raw, err := json.Marshal(want)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var got Course
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got != want {
			t.Fatalf("round trip = %+v, want %+v", got, want)
		}
	}

	raw, _ := json.Marshal(SampleCourses()[0])
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal fields: %v", err)
	}
	for _, key := range []string{"id", "title", "description", "price", "image", "authorId", "authorName", "published", "createdAt", "category", "duration", "level"} {
		if _, ok := fields[key]; !ok {
			t.Fatalf("missing JSON field %q in %s", key, raw)
		}
	}
}

func TestFixedVocabularies(t *testing.T) {
	t.Parallel()

	if len(Categories()) != 10 || !IsCategory("Machine Learning") || IsCategory("All") {
		t.Fatalf("categories = %v", Categories())
	}
	if fmt.Sprint(Levels()) != "[Beginner Intermediate Advanced]" {
		t.Fatalf("levels = %v", Levels())
	}
	if len(DefaultImages()) != 6 {
		t.Fatalf("default images = %d, want 6", len(DefaultImages()))
	}
	Categories()[0] = "mutated"
	if !IsCategory("Web Development") {
		t.Fatal("expected Categories to return a copy")
	}
}

type failingStore struct {
	*memory.Store
	failPut bool
}

func (f *failingStore) Put(ctx context.Context, key string, value []byte) error {
	if f.failPut {
		return errors.New("disk full")
	}
	return f.Store.Put(ctx, key, value)
}

func openTestStore(t *testing.T) (*Store, *memory.Store) {
	t.Helper()
	kv := memory.New()
	counter := 0
	store, err := Open(context.Background(), kv,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() (string, error) {
			counter++
			return fmt.Sprintf("course-%d", counter), nil
		}),
	)
	if err != nil {
		t.Fatalf("open course store: %v", err)
	}
	return store, kv
}

func newCourseInput() Course {
	return Course{
		Title:       "Go Concurrency Patterns",
		Description: "Goroutines, channels, and context in practice.",
		Price:       59.99,
		Image:       "https://example.com/go.png",
		AuthorID:    "admin1",
		AuthorName:  "Sarah Johnson",
		Published:   true,
		Category:    "Programming",
		Duration:    "6 hours",
		Level:       LevelAdvanced,
	}
}

func readCourses(t *testing.T, kv storage.KeyValueStore) []Course {
	t.Helper()
	var courses []Course
	if _, err := storage.ReadJSON(context.Background(), kv, storage.KeyCourses, &courses); err != nil {
		t.Fatalf("read courses: %v", err)
	}
	return courses
}

func ids(courses []Course) []string {
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.ID)
	}
	return out
}
