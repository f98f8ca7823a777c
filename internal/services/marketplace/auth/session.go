package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/omkumar23112003/course-selling-app/internal/services/marketplace/storage"
)

// SessionHolder owns the single current session and its persisted copy.
type SessionHolder struct {
	mu      sync.Mutex
	kv      storage.KeyValueStore
	current *Session
}

// LoadSessionHolder restores the persisted session, if any.
func LoadSessionHolder(ctx context.Context, kv storage.KeyValueStore) (*SessionHolder, error) {
	if kv == nil {
		return nil, fmt.Errorf("storage is required")
	}
	h := &SessionHolder{kv: kv}
	if _, _, err := h.Load(ctx); err != nil {
		return nil, err
	}
	return h, nil
}

// Current returns the cached session.
func (h *SessionHolder) Current() (Session, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current == nil {
		return Session{}, false
	}
	return *h.current, true
}

// Load re-reads the persisted session and refreshes the cache.
func (h *SessionHolder) Load(ctx context.Context) (Session, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var session Session
	found, err := storage.ReadJSON(ctx, h.kv, storage.KeyCurrentSession, &session)
	if err != nil {
		return Session{}, false, err
	}
	if !found {
		h.current = nil
		return Session{}, false, nil
	}
	h.current = &session
	return session, true, nil
}

// Set persists session as the current session.
func (h *SessionHolder) Set(ctx context.Context, session Session) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := storage.WriteJSON(ctx, h.kv, storage.KeyCurrentSession, session); err != nil {
		return err
	}
	h.current = &session
	return nil
}

// Clear removes the current session. Clearing an empty holder is a no-op.
func (h *SessionHolder) Clear(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.kv.Delete(ctx, storage.KeyCurrentSession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	h.current = nil
	return nil
}
