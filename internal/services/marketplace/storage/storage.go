// Package storage defines the key-value persistence contract shared by the
// marketplace stores and the JSON encoding of the values kept under each key.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	apperrors "github.com/omkumar23112003/course-selling-app/internal/platform/errors"
)

// Persisted keys. Values are JSON documents.
const (
	// KeyStudents holds the student account collection.
	KeyStudents = "users"
	// KeyInstructors holds the instructor account collection.
	KeyInstructors = "admins"
	// KeyCurrentSession holds the single current session record, if any.
	KeyCurrentSession = "currentUser"
	// KeyCourses holds the course collection.
	KeyCourses = "courses"
)

// KeyValueStore persists opaque values under string keys. Implementations
// must make a Put visible to every later Get before returning.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// ReadJSON decodes the value under key into target. It reports false when
// the key is absent. A value that does not decode is returned as a
// STORAGE_CORRUPT error rather than being replaced with a default.
func ReadJSON(ctx context.Context, kv KeyValueStore, key string, target any) (bool, error) {
	if kv == nil {
		return false, fmt.Errorf("storage is not configured")
	}
	raw, found, err := kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return true, &apperrors.Error{
			Code:     apperrors.CodeStorageCorrupt,
			Message:  "decode " + key,
			Metadata: map[string]string{"Key": key},
			Cause:    err,
		}
	}
	return true, nil
}

// WriteJSON encodes value and stores it under key.
func WriteJSON(ctx context.Context, kv KeyValueStore, key string, value any) error {
	if kv == nil {
		return fmt.Errorf("storage is not configured")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// NormalizeKey trims a key and rejects empty ones.
func NormalizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("key is required")
	}
	return key, nil
}
