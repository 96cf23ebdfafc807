package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
	"github.com/wl0182/Restaurant-Ordering-System/pkg/storage"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=session.go -destination=../mocks/auth.go -package=mocks -typed

const (
	KeyToken         = "authToken"
	tableSessionKeyF = "sessionId-%s"
)

type Authenticator interface {
	Login(ctx context.Context, cred entity.Credential) (string, error)
	Register(ctx context.Context, r entity.Registration) (string, error)
}

// Session is the auth state of one browser. The token lives only in the store and
// is read from it on every call, so concurrent requests never see a stale copy.
type Session struct {
	api   Authenticator
	store storage.Store
}

func NewSession(api Authenticator, store storage.Store) *Session {
	return &Session{
		api:   api,
		store: store,
	}
}

// Login persists the token only when the backend accepts the credential.
func (s *Session) Login(ctx context.Context, cred entity.Credential) (string, error) {
	token, err := s.api.Login(ctx, cred)
	if err != nil {
		return "", fmt.Errorf("%w: %w", entity.ErrInvalidCredentials, err)
	}

	err = s.store.Set(ctx, KeyToken, token)
	if err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}

	slog.InfoContext(ctx, "logged in", "role", RoleOf(token).String())

	return token, nil
}

func (s *Session) Logout(ctx context.Context) error {
	err := s.store.Delete(ctx, KeyToken)
	if err != nil {
		return fmt.Errorf("delete token: %w", err)
	}

	return nil
}

// Token returns entity.ErrUnauthenticated when no token is stored.
func (s *Session) Token(ctx context.Context) (string, error) {
	token, err := s.store.Get(ctx, KeyToken)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", entity.ErrUnauthenticated
		}

		return "", fmt.Errorf("read token: %w", err)
	}

	if token == "" {
		return "", entity.ErrUnauthenticated
	}

	return token, nil
}

func (s *Session) HasToken(ctx context.Context) bool {
	_, err := s.Token(ctx)
	return err == nil
}

func (s *Session) CurrentRole(ctx context.Context) entity.Role {
	token, err := s.Token(ctx)
	if err != nil {
		return entity.RoleNone
	}

	return RoleOf(token)
}

// Register rejects mismatching passwords before any backend call. The token the
// backend returns is not stored: the new account still has to log in.
func (s *Session) Register(ctx context.Context, r entity.Registration) error {
	if r.Password != r.ConfirmPassword {
		return entity.ErrPasswordMismatch
	}

	_, err := s.api.Register(ctx, r)
	if err != nil {
		return err
	}

	return nil
}

// Remember caches the session started on table. The cache is a hint only.
func (s *Session) Remember(ctx context.Context, table string, sessionID int64) error {
	return s.store.Set(ctx, fmt.Sprintf(tableSessionKeyF, table), strconv.FormatInt(sessionID, 10))
}

func (s *Session) Forget(ctx context.Context, table string) error {
	return s.store.Delete(ctx, fmt.Sprintf(tableSessionKeyF, table))
}

func (s *Session) Remembered(ctx context.Context, table string) (int64, bool) {
	v, err := s.store.Get(ctx, fmt.Sprintf(tableSessionKeyF, table))
	if err != nil {
		return 0, false
	}

	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}
