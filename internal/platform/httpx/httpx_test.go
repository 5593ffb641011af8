package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"

	apperrors "uniplan/internal/platform/errors"
	"uniplan/internal/platform/httpx"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newClient(t *testing.T, token staticToken, handler http.Handler) *httpx.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := httpx.New(srv.URL, token, zerolog.Nop())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestRequestCarriesBearerAndRequestID(t *testing.T) {
	t.Parallel()
	var gotAuth, gotID string
	client := newClient(t, "tok-123", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotID = r.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode(map[string]string{"ok": "yes"})
	}))

	var out map[string]string
	if err := client.Get(context.Background(), "courses/", nil, &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("authorization header = %q", gotAuth)
	}
	if gotID == "" {
		t.Fatalf("every request must carry an X-Request-ID")
	}
	if out["ok"] != "yes" {
		t.Fatalf("decoded body wrong: %v", out)
	}
}

func TestAnonymousRequestOmitsAuthorization(t *testing.T) {
	t.Parallel()
	var sawAuth bool
	client := newClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := client.Get(context.Background(), "courses/", nil, nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if sawAuth {
		t.Fatalf("empty token must not produce an Authorization header")
	}
}

func TestQueryAndPathJoinOntoBase(t *testing.T) {
	t.Parallel()
	var gotPath, gotQuery string
	client := newClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusNoContent)
	}))

	q := url.Values{"level": {"UNDERGRAD"}}
	if err := client.Get(context.Background(), "/catalog/programs/", q, nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotPath != "/catalog/programs/" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotQuery != "level=UNDERGRAD" {
		t.Fatalf("query = %q", gotQuery)
	}
}

func TestErrorTaxonomy(t *testing.T) {
	t.Parallel()
	status := func(code int, body string) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
			_, _ = w.Write([]byte(body))
		})
	}

	t.Run("401 maps to unauthorized", func(t *testing.T) {
		t.Parallel()
		client := newClient(t, "", status(http.StatusUnauthorized, `{}`))
		if err := client.Get(context.Background(), "auth/me/", nil, nil); !errors.Is(err, apperrors.ErrUnauthorized) {
			t.Fatalf("got %v", err)
		}
	})

	t.Run("404 maps to not found", func(t *testing.T) {
		t.Parallel()
		client := newClient(t, "", status(http.StatusNotFound, `{}`))
		if err := client.Get(context.Background(), "courses/99/", nil, nil); !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("got %v", err)
		}
	})

	t.Run("structured detail becomes a validation error", func(t *testing.T) {
		t.Parallel()
		client := newClient(t, "", status(http.StatusBadRequest, `{"detail":"Cannot delete semester with courses"}`))
		err := client.Delete(context.Background(), "planned-courses/semesters/", map[string]int{"number": 2})
		ve, ok := apperrors.AsValidation(err)
		if !ok {
			t.Fatalf("expected validation error, got %v", err)
		}
		if ve.Detail != "Cannot delete semester with courses" {
			t.Fatalf("detail = %q", ve.Detail)
		}
	})

	t.Run("unstructured failure keeps the status", func(t *testing.T) {
		t.Parallel()
		client := newClient(t, "", status(http.StatusBadGateway, "upstream down"))
		err := client.Get(context.Background(), "courses/", nil, nil)
		if err == nil || errors.Is(err, apperrors.ErrUnauthorized) || errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("expected a plain status error, got %v", err)
		}
		if _, ok := apperrors.AsValidation(err); ok {
			t.Fatalf("body without detail must not become a validation error: %v", err)
		}
	})
}

func TestBodyKeyedDeleteSendsJSON(t *testing.T) {
	t.Parallel()
	var gotMethod, gotContentType string
	var gotBody map[string]int64
	client := newClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := client.Delete(context.Background(), "planned-courses/", map[string]int64{"course_id": 7}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if gotMethod != http.MethodDelete || gotContentType != "application/json" {
		t.Fatalf("method=%q content-type=%q", gotMethod, gotContentType)
	}
	if gotBody["course_id"] != 7 {
		t.Fatalf("body = %v", gotBody)
	}
}
