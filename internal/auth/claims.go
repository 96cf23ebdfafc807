package auth

import (
	"encoding/json"
	"slices"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
)

// Authorities normalizes the two shapes an authority takes in the token:
// a bare string or an {"authority": "..."} object. Entries of other shapes are dropped.
// A claim that is not a list decodes to nil, as if it were absent.
type Authorities []string

func (a *Authorities) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage

	err := json.Unmarshal(b, &raw)
	if err != nil || raw == nil {
		*a = nil
		return nil
	}

	out := make(Authorities, 0, len(raw))

	for _, r := range raw {
		var s string
		if json.Unmarshal(r, &s) == nil {
			out = append(out, s)
			continue
		}

		var obj struct {
			Authority string `json:"authority"`
		}
		if json.Unmarshal(r, &obj) == nil && obj.Authority != "" {
			out = append(out, obj.Authority)
		}
	}

	*a = out

	return nil
}

type Claims struct {
	Role        string      `json:"role"`
	Authorities Authorities `json:"authorities"`
	jwt.RegisteredClaims
}

// ClientRole prefers the authorities list and falls back to the role claim.
func (c *Claims) ClientRole() entity.Role {
	if c.Authorities != nil {
		if slices.Contains(c.Authorities, entity.AuthorityAdmin) {
			return entity.RoleAdmin
		}

		return entity.RoleUser
	}

	switch c.Role {
	case "":
		return entity.RoleNone
	case entity.AuthorityAdmin, string(entity.RoleAdmin):
		return entity.RoleAdmin
	default:
		return entity.RoleUser
	}
}

var parser = jwt.NewParser(jwt.WithPaddingAllowed())

// RoleOf decodes the token payload without verifying its signature. The backend
// verifies every call; the role only decides which views to offer.
// It never fails: a missing or malformed token yields entity.RoleNone.
func RoleOf(token string) entity.Role {
	if token == "" {
		return entity.RoleNone
	}

	var claims Claims

	_, _, err := parser.ParseUnverified(token, &claims)
	if err != nil {
		return entity.RoleNone
	}

	return claims.ClientRole()
}
