package guard

import (
	"context"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
)

// Viewer is the auth state a guard inspects.
type Viewer interface {
	HasToken(ctx context.Context) bool
	CurrentRole(ctx context.Context) entity.Role
}

// Decision either allows the view or names where to go instead.
type Decision struct {
	Allowed  bool   `json:"allowed"`
	Redirect string `json:"redirect,omitempty"`
}

func allow() Decision {
	return Decision{Allowed: true}
}

func redirect(route string) Decision {
	return Decision{Redirect: route}
}

// Authenticated admits any viewer holding a token with a recognized role.
// A token whose payload cannot be decoded counts as no token.
func Authenticated(ctx context.Context, v Viewer) Decision {
	if !v.HasToken(ctx) || v.CurrentRole(ctx) == entity.RoleNone {
		return redirect(entity.RouteLogin)
	}

	return allow()
}

// Admin admits only ADMIN viewers. A viewer failing Authenticated is sent to
// login; an authenticated non-admin goes home.
func Admin(ctx context.Context, v Viewer) Decision {
	if d := Authenticated(ctx, v); !d.Allowed {
		return d
	}

	if v.CurrentRole(ctx) != entity.RoleAdmin {
		return redirect(entity.RouteHome)
	}

	return allow()
}
