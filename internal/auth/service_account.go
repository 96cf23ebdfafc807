package auth

import (
	"context"
	"sync"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
	"github.com/wl0182/Restaurant-Ordering-System/pkg/storage"
)

// ServiceAccount is a token source for background jobs. It logs in lazily and
// logs in again after Invalidate.
type ServiceAccount struct {
	mu   sync.Mutex
	s    *Session
	cred entity.Credential
}

func NewServiceAccount(api Authenticator, cred entity.Credential) *ServiceAccount {
	return &ServiceAccount{
		s:    NewSession(api, storage.NewMemory()),
		cred: cred,
	}
}

func (a *ServiceAccount) Token(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	token, err := a.s.Token(ctx)
	if err == nil {
		return token, nil
	}

	return a.s.Login(ctx, a.cred)
}

func (a *ServiceAccount) Invalidate(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	_ = a.s.Logout(ctx)
}
