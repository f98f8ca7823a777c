package course

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/omkumar23112003/course-selling-app/internal/platform/id"
	"github.com/omkumar23112003/course-selling-app/internal/services/marketplace/storage"
)

// DateLayout is the persisted format of CreatedAt.
const DateLayout = "2006-01-02"

// Store keeps the course collection in memory and writes the whole
// collection back to storage on every mutation.
type Store struct {
	mu          sync.Mutex
	kv          storage.KeyValueStore
	courses     []Course
	now         func() time.Time
	idGenerator func() (string, error)
	pickImage   func(n int) int
	validate    *validator.Validate
}

// Option customizes a Store.
type Option func(*Store)

// WithClock overrides the clock used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides course id generation.
func WithIDGenerator(idGenerator func() (string, error)) Option {
	return func(s *Store) {
		if idGenerator != nil {
			s.idGenerator = idGenerator
		}
	}
}

// WithImagePicker overrides the choice of default image. pick receives the
// pool size and returns an index in [0, n).
func WithImagePicker(pick func(n int) int) Option {
	return func(s *Store) {
		if pick != nil {
			s.pickImage = pick
		}
	}
}

// Open loads the course collection from kv. When no collection has ever
// been persisted, the sample courses are written first.
func Open(ctx context.Context, kv storage.KeyValueStore, opts ...Option) (*Store, error) {
	if kv == nil {
		return nil, fmt.Errorf("storage is required")
	}
	s := &Store{
		kv:          kv,
		now:         time.Now,
		idGenerator: id.NewID,
		pickImage:   rand.IntN,
		validate:    newValidator(),
	}
	for _, opt := range opts {
		opt(s)
	}

	var courses []Course
	found, err := storage.ReadJSON(ctx, kv, storage.KeyCourses, &courses)
	if err != nil {
		return nil, err
	}
	if !found {
		courses = SampleCourses()
		if err := storage.WriteJSON(ctx, kv, storage.KeyCourses, courses); err != nil {
			return nil, fmt.Errorf("seed courses: %w", err)
		}
	}
	s.courses = courses
	return s, nil
}

// List returns every course in insertion order, drafts included.
func (s *Store) List(ctx context.Context) ([]Course, error) {
	return s.filter(ctx, func(Course) bool { return true })
}

// ListPublished returns the courses visible in the public catalog.
func (s *Store) ListPublished(ctx context.Context) ([]Course, error) {
	return s.filter(ctx, func(c Course) bool { return c.Published })
}

// ListByAuthor returns the courses whose AuthorID equals authorID.
func (s *Store) ListByAuthor(ctx context.Context, authorID string) ([]Course, error) {
	return s.filter(ctx, func(c Course) bool { return c.AuthorID == authorID })
}

// Get returns the course with the given id.
func (s *Store) Get(ctx context.Context, courseID string) (Course, bool, error) {
	if err := ctx.Err(); err != nil {
		return Course{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(courseID); i >= 0 {
		return s.courses[i], true, nil
	}
	return Course{}, false, nil
}

// Add appends a new course. The store assigns ID and CreatedAt, ignoring
// whatever the caller supplied, and picks a default image when Image is
// blank.
func (s *Store) Add(ctx context.Context, c Course) (Course, error) {
	if err := ctx.Err(); err != nil {
		return Course{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	courseID, err := s.newID()
	if err != nil {
		return Course{}, err
	}
	c.ID = courseID
	c.CreatedAt = s.now().UTC().Format(DateLayout)
	if strings.TrimSpace(c.Image) == "" {
		c.Image = defaultImages[s.pickImage(len(defaultImages))]
	}
	if err := validateCourse(s.validate, c); err != nil {
		return Course{}, err
	}

	next := append(slices.Clone(s.courses), c)
	if err := s.persist(ctx, next); err != nil {
		return Course{}, err
	}
	return c, nil
}

// Update merges u into the course with the given id. An unknown id is a
// no-op and not an error.
func (s *Store) Update(ctx context.Context, courseID string, u Update) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(courseID)
	if i < 0 {
		return nil
	}
	merged := u.Apply(s.courses[i])
	if err := validateCourse(s.validate, merged); err != nil {
		return err
	}
	next := slices.Clone(s.courses)
	next[i] = merged
	return s.persist(ctx, next)
}

// Delete removes the course with the given id. An unknown id is a no-op
// and not an error.
func (s *Store) Delete(ctx context.Context, courseID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(courseID)
	if i < 0 {
		return nil
	}
	next := slices.Delete(slices.Clone(s.courses), i, i+1)
	return s.persist(ctx, next)
}

func (s *Store) filter(ctx context.Context, keep func(Course) bool) ([]Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Course, 0, len(s.courses))
	for _, c := range s.courses {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) indexOf(courseID string) int {
	return slices.IndexFunc(s.courses, func(c Course) bool { return c.ID == courseID })
}

// newID draws ids until one is not already in the collection.
func (s *Store) newID() (string, error) {
	for attempt := 0; attempt < 3; attempt++ {
		courseID, err := s.idGenerator()
		if err != nil {
			return "", fmt.Errorf("generate course id: %w", err)
		}
		if strings.TrimSpace(courseID) != "" && s.indexOf(courseID) < 0 {
			return courseID, nil
		}
	}
	return "", fmt.Errorf("generate course id: no unique id after 3 attempts")
}

// persist writes next to storage before caching it.
func (s *Store) persist(ctx context.Context, next []Course) error {
	if err := storage.WriteJSON(ctx, s.kv, storage.KeyCourses, next); err != nil {
		return err
	}
	s.courses = next
	return nil
}
