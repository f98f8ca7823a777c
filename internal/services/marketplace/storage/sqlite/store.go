// Package sqlite provides a SQLite-backed key-value store for marketplace
// state.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/omkumar23112003/course-selling-app/internal/platform/requestctx"
	sqlitemigrate "github.com/omkumar23112003/course-selling-app/internal/platform/storage/sqlitemigrate"
	"github.com/omkumar23112003/course-selling-app/internal/platform/timeouts"
	"github.com/omkumar23112003/course-selling-app/internal/services/marketplace/storage"
	"github.com/omkumar23112003/course-selling-app/internal/services/marketplace/storage/sqlite/migrations"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	_ "modernc.org/sqlite"
)

const tracerName = "github.com/omkumar23112003/course-selling-app/internal/services/marketplace/storage/sqlite"

// Store persists marketplace keys in one SQLite table.
type Store struct {
	sqlDB  *sql.DB
	tracer trace.Tracer
	now    func() time.Time
}

// Open opens a SQLite store at path and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)&_pragma=synchronous(NORMAL)",
		cleanPath, timeouts.SQLiteBusy.Milliseconds())
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{
		sqlDB:  sqlDB,
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
	}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (value []byte, found bool, err error) {
	ctx, span := s.startSpan(ctx, "kv.Get", key)
	defer func() { endSpan(span, err) }()

	if err := s.ready(ctx); err != nil {
		return nil, false, err
	}
	key, err = storage.NormalizeKey(key)
	if err != nil {
		return nil, false, err
	}

	var text string
	err = s.sqlDB.QueryRowContext(ctx, `SELECT value FROM key_values WHERE key = ?`, key).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	span.SetAttributes(attribute.Int("kv.value_bytes", len(text)))
	return []byte(text), true, nil
}

// Put stores value under key, replacing any previous value.
func (s *Store) Put(ctx context.Context, key string, value []byte) (err error) {
	ctx, span := s.startSpan(ctx, "kv.Put", key)
	defer func() { endSpan(span, err) }()

	if err := s.ready(ctx); err != nil {
		return err
	}
	key, err = storage.NormalizeKey(key)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.Int("kv.value_bytes", len(value)))

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO key_values (key, value, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   value = excluded.value,
		   updated_at = excluded.updated_at`,
		key,
		string(value),
		s.now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) (err error) {
	ctx, span := s.startSpan(ctx, "kv.Delete", key)
	defer func() { endSpan(span, err) }()

	if err := s.ready(ctx); err != nil {
		return err
	}
	key, err = storage.NormalizeKey(key)
	if err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM key_values WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Keys lists the stored keys in lexical order.
func (s *Store) Keys(ctx context.Context) (keys []string, err error) {
	ctx, span := s.startSpan(ctx, "kv.Keys", "")
	defer func() { endSpan(span, err) }()

	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT key FROM key_values ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("list keys: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	return keys, nil
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

func (s *Store) startSpan(ctx context.Context, name string, key string) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	if s != nil && s.tracer != nil {
		tracer = s.tracer
	}
	attrs := []attribute.KeyValue{attribute.String("db.system", "sqlite")}
	if key != "" {
		attrs = append(attrs, attribute.String("kv.key", key))
	}
	if actor, ok := requestctx.ActorFromContext(ctx); ok {
		attrs = append(attrs,
			attribute.String("enduser.id", actor.ID),
			attribute.Bool("enduser.instructor", actor.Instructor),
		)
	}
	return tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindClient), trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

var _ storage.KeyValueStore = (*Store)(nil)
