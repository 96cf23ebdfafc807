package guard_test

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/wl0182/Restaurant-Ordering-System/internal/auth"
	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
	"github.com/wl0182/Restaurant-Ordering-System/internal/guard"
	"github.com/wl0182/Restaurant-Ordering-System/pkg/storage"
)

func session(t *testing.T, token string) *auth.Session {
	t.Helper()

	store := storage.NewMemory()
	if token != "" {
		require.NoError(t, store.Set(context.Background(), auth.KeyToken, token))
	}

	return auth.NewSession(nil, store)
}

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	return token
}

func TestGuards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		token         string
		authenticated guard.Decision
		admin         guard.Decision
	}{
		{
			name:          "no token",
			authenticated: guard.Decision{Redirect: entity.RouteLogin},
			admin:         guard.Decision{Redirect: entity.RouteLogin},
		},
		{
			name:          "malformed token",
			token:         "not-a-jwt",
			authenticated: guard.Decision{Redirect: entity.RouteLogin},
			admin:         guard.Decision{Redirect: entity.RouteLogin},
		},
		{
			name:          "token without role",
			token:         signed(t, jwt.MapClaims{"sub": "x@example.com"}),
			authenticated: guard.Decision{Redirect: entity.RouteLogin},
			admin:         guard.Decision{Redirect: entity.RouteLogin},
		},
		{
			name:          "user",
			token:         signed(t, jwt.MapClaims{"authorities": []any{"ROLE_USER"}}),
			authenticated: guard.Decision{Allowed: true},
			admin:         guard.Decision{Redirect: entity.RouteHome},
		},
		{
			name:          "admin",
			token:         signed(t, jwt.MapClaims{"authorities": []any{"ROLE_ADMIN"}}),
			authenticated: guard.Decision{Allowed: true},
			admin:         guard.Decision{Allowed: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			s := session(t, tt.token)

			require.Equal(t, tt.authenticated, guard.Authenticated(ctx, s))
			require.Equal(t, tt.admin, guard.Admin(ctx, s))
		})
	}
}

func TestGuards_AfterLogout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := session(t, signed(t, jwt.MapClaims{"role": "ROLE_ADMIN"}))

	require.True(t, guard.Admin(ctx, s).Allowed)

	require.NoError(t, s.Logout(ctx))

	require.Equal(t, guard.Decision{Redirect: entity.RouteLogin}, guard.Authenticated(ctx, s))
	require.Equal(t, guard.Decision{Redirect: entity.RouteLogin}, guard.Admin(ctx, s))
}
