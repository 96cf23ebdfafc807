package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gofrs/uuid/v5"
	"github.com/rs/cors"

	"github.com/wl0182/Restaurant-Ordering-System/internal/auth"
	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
	"github.com/wl0182/Restaurant-Ordering-System/internal/guard"
	"github.com/wl0182/Restaurant-Ordering-System/pkg/config"
	"github.com/wl0182/Restaurant-Ordering-System/pkg/logger"
	"github.com/wl0182/Restaurant-Ordering-System/pkg/storage"
)

// SessionCookie identifies a browser. The auth state itself never leaves the store.
const SessionCookie = "pos_sid"

var skipLogging = map[string]struct{}{
	"/api/health": {},
}

type Middleware struct {
	api          auth.Authenticator
	store        storage.Store
	cookieSecure bool
	cors         *cors.Cors
}

func NewMiddleware(api auth.Authenticator, store storage.Store, cfg config.HTTP) *Middleware {
	return &Middleware{
		api:          api,
		store:        store,
		cookieSecure: cfg.CookieSecure,
		cors: cors.New(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Content-Type", "Origin", "Accept", "User-Agent", "Cache-Control", "X-Request-Id"},
			ExposedHeaders:   []string{"Location", "X-Request-Id"},
			AllowCredentials: true,
		}),
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx = logger.WithRequestID(ctx, requestID)
		w.Header().Set("X-Request-Id", requestID)

		if _, ok := skipLogging[r.URL.Path]; ok {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		slog.InfoContext(ctx, "incoming request", "method", r.Method, "path", r.URL.Path)

		next.ServeHTTP(ww, r.WithContext(ctx))

		slog.InfoContext(ctx, "request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"latency", time.Since(start).String(),
		)
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "recovered from panic", "error", err, "stack", string(debug.Stack()))
				SendJSON(ctx, w, http.StatusInternalServerError, ErrorResponse{Message: "Internal error"})
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return m.cors.Handler(next)
}

// Session attaches the auth state of the calling browser, issuing a browser id
// cookie on first contact.
func (m *Middleware) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		browserID := browserIDFromRequest(r)
		if browserID == "" {
			browserID = uuid.Must(uuid.NewV4()).String()

			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    browserID,
				Path:     "/",
				HttpOnly: true,
				Secure:   m.cookieSecure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		s := auth.NewSession(m.api, storage.WithPrefix(m.store, "browser:"+browserID))

		ctx = auth.CtxWithSession(ctx, s)
		ctx = logger.WithBrowserID(ctx, browserID)
		ctx = logger.WithRole(ctx, s.CurrentRole(ctx).String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func browserIDFromRequest(r *http.Request) string {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}

	id, err := uuid.FromString(c.Value)
	if err != nil || id == uuid.Nil {
		return ""
	}

	return id.String()
}

type RedirectResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return m.guarded(guard.Authenticated, next)
}

func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return m.guarded(guard.Admin, next)
}

// denial maps a guard redirect to the status and message of the error body.
func denial(redirect string) (int, string) {
	if redirect == entity.RouteLogin {
		return http.StatusUnauthorized, "Login required"
	}

	return http.StatusForbidden, "Admin access required"
}

func (m *Middleware) guarded(check func(ctx context.Context, v guard.Viewer) guard.Decision, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		s := auth.SessionFromCtx(ctx)
		if s == nil {
			SendJSONErr(ctx, w, http.StatusInternalServerError, errors.New("no session in context"), "Internal error")
			return
		}

		d := check(ctx, s)
		if !d.Allowed {
			slog.InfoContext(ctx, "view denied", "path", r.URL.Path, "redirect", d.Redirect)

			code, msg := denial(d.Redirect)

			w.Header().Set("Location", d.Redirect)
			SendJSON(ctx, w, code, RedirectResponse{Message: msg, Redirect: d.Redirect})

			return
		}

		next.ServeHTTP(w, r)
	})
}
