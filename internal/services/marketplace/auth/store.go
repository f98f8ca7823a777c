package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/omkumar23112003/course-selling-app/internal/platform/id"
	"github.com/omkumar23112003/course-selling-app/internal/services/marketplace/storage"
)

// CredentialStore authenticates against the student and instructor
// collections and records the resulting session.
type CredentialStore struct {
	mu          sync.Mutex
	kv          storage.KeyValueStore
	sessions    *SessionHolder
	idGenerator func() (string, error)
}

// Option customizes a CredentialStore.
type Option func(*CredentialStore)

// WithIDGenerator overrides account id generation.
func WithIDGenerator(idGenerator func() (string, error)) Option {
	return func(s *CredentialStore) {
		if idGenerator != nil {
			s.idGenerator = idGenerator
		}
	}
}

// NewCredentialStore builds a store over kv and rehydrates the persisted
// session.
func NewCredentialStore(ctx context.Context, kv storage.KeyValueStore, opts ...Option) (*CredentialStore, error) {
	sessions, err := LoadSessionHolder(ctx, kv)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	s := &CredentialStore{
		kv:          kv,
		sessions:    sessions,
		idGenerator: id.NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Sessions returns the holder of the current session.
func (s *CredentialStore) Sessions() *SessionHolder {
	return s.sessions
}

// Login looks for an account with exactly this email and password in the
// collection selected by asInstructor. Unknown email and wrong password both
// yield ErrInvalidCredentials.
func (s *CredentialStore) Login(ctx context.Context, email, password string, asInstructor bool) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.readAccounts(ctx, asInstructor)
	if err != nil {
		return Session{}, err
	}
	for _, account := range accounts {
		if account.Email == email && account.Password == password {
			session := SessionFor(account, asInstructor)
			if err := s.sessions.Set(ctx, session); err != nil {
				return Session{}, err
			}
			return session, nil
		}
	}
	return Session{}, ErrInvalidCredentials
}

// Signup appends a new account to the selected collection and logs it in.
// An email already present in that collection yields ErrAlreadyExists and
// leaves the collection untouched.
func (s *CredentialStore) Signup(ctx context.Context, in SignupInput) (Session, error) {
	if err := in.validate(); err != nil {
		return Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.readAccounts(ctx, in.AsInstructor)
	if err != nil {
		return Session{}, err
	}
	if _, exists := findByEmail(accounts, in.Email); exists {
		return Session{}, ErrAlreadyExists
	}

	accountID, err := s.idGenerator()
	if err != nil {
		return Session{}, fmt.Errorf("generate account id: %w", err)
	}
	account := Account{
		ID:       accountID,
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
		IsAdmin:  in.AsInstructor,
	}
	accounts = append(accounts, account)
	if err := storage.WriteJSON(ctx, s.kv, CollectionKey(in.AsInstructor), accounts); err != nil {
		return Session{}, err
	}

	session := SessionFor(account, in.AsInstructor)
	if err := s.sessions.Set(ctx, session); err != nil {
		return Session{}, err
	}
	return session, nil
}

// Logout clears the current session.
func (s *CredentialStore) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// CurrentSession returns the persisted session, if any.
func (s *CredentialStore) CurrentSession(ctx context.Context) (Session, bool, error) {
	return s.sessions.Load(ctx)
}

// Accounts lists the accounts of one collection in insertion order.
func (s *CredentialStore) Accounts(ctx context.Context, asInstructor bool) ([]Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAccounts(ctx, asInstructor)
}

func (s *CredentialStore) readAccounts(ctx context.Context, asInstructor bool) ([]Account, error) {
	var accounts []Account
	if _, err := storage.ReadJSON(ctx, s.kv, CollectionKey(asInstructor), &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}
