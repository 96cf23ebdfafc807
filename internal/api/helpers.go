package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
)

type ErrorResponse struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	if code >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "api error", "error", originErr.Error(), "http_code", code)
	} else {
		slog.WarnContext(ctx, "api error", "error", originErr.Error(), "http_code", code)
	}

	SendJSON(ctx, w, code, ErrorResponse{Message: msgToSend, Description: originErr.Error()})
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// sendErr picks the status from the error chain. A backend explanation, when
// there is one, is passed to the view verbatim.
func sendErr(ctx context.Context, w http.ResponseWriter, err error) {
	code, msg := errStatus(err)

	var apiErr *entity.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		msg = apiErr.Message
	}

	SendJSONErr(ctx, w, code, err, msg)
}

func errStatus(err error) (int, string) {
	switch {
	case errors.Is(err, entity.ErrEmptyCart),
		errors.Is(err, entity.ErrPasswordMismatch),
		errors.Is(err, entity.ErrNoSession):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, entity.ErrInvalidArgument):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, entity.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, entity.ErrUnauthenticated):
		return http.StatusUnauthorized, "Login required"
	case errors.Is(err, entity.ErrForbidden):
		return http.StatusForbidden, "Action is not allowed"
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, entity.ErrConflict), errors.Is(err, entity.ErrInvalidTransition):
		return http.StatusConflict, "Conflict"
	}

	var apiErr *entity.APIError
	if errors.As(err, &apiErr) {
		return http.StatusBadGateway, "Restaurant service is unavailable"
	}

	return http.StatusInternalServerError, "Internal error"
}

// decodeBody leaves dst untouched when the body is empty.
func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// queryRef reads the session reference the order, menu and receipt views carry.
// A missing or malformed reference yields an invalid SessionRef.
func queryRef(r *http.Request) entity.SessionRef {
	q := r.URL.Query()

	id, _ := strconv.ParseInt(q.Get("sessionId"), 10, 64)

	return entity.SessionRef{SessionID: id, TableNumber: q.Get("tableNumber")}
}
