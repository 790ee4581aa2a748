package netx

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDoJSON(t *testing.T) {
	t.Run("posts JSON with bearer token", func(t *testing.T) {
		var gotMethod, gotCT, gotAuth string
		var gotBody map[string]string

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotCT = r.Header.Get("Content-Type")
			gotAuth = r.Header.Get("Authorization")
			b, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(b, &gotBody)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))
		defer ts.Close()

		resp, err := DoJSON(context.Background(), ts.Client(), http.MethodPost, ts.URL, "tok", map[string]string{"message": "hello"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotMethod != http.MethodPost {
			t.Fatalf("method = %q, want POST", gotMethod)
		}
		if gotCT != "application/json" {
			t.Fatalf("Content-Type = %q", gotCT)
		}
		if gotAuth != "Bearer tok" {
			t.Fatalf("Authorization = %q", gotAuth)
		}
		if gotBody["message"] != "hello" {
			t.Fatalf("body = %v", gotBody)
		}
		if resp.StatusCode != http.StatusCreated || !resp.OK() {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		if string(resp.Body) != `{"ok":true}` {
			t.Fatalf("body = %q", resp.Body)
		}
	})

	t.Run("GET without payload or token", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "" {
				t.Errorf("unexpected Authorization header")
			}
			if r.Header.Get("Content-Type") != "" {
				t.Errorf("unexpected Content-Type header")
			}
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer ts.Close()

		resp, err := DoJSON(context.Background(), nil, http.MethodGet, ts.URL, "", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.OK() {
			t.Fatalf("401 must not be OK")
		}
	})

	t.Run("connection failure -> error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := ts.URL
		ts.Close()

		if _, err := DoJSON(context.Background(), nil, http.MethodGet, url, "", nil); err == nil {
			t.Fatalf("expected error for closed server")
		}
	})

	t.Run("context timeout -> error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer ts.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		if _, err := DoJSON(ctx, ts.Client(), http.MethodGet, ts.URL, "", nil); err == nil {
			t.Fatalf("expected timeout error")
		}
	})

	t.Run("bad URL -> error", func(t *testing.T) {
		if _, err := DoJSON(context.Background(), nil, http.MethodGet, "://bad", "", nil); err == nil {
			t.Fatalf("expected error for invalid URL")
		}
	})
}
