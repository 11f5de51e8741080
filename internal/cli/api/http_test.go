package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPost_SendsBearerAndBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Errorf("Authorization header = %q", got)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		b, _ := io.ReadAll(r.Body)
		if string(b) != `{"x":1}` {
			t.Errorf("unexpected body: %s", b)
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	resp, body, err := Post(context.Background(), ts.URL, "application/json", []byte(`{"x":1}`), "tok123")
	if err != nil {
		t.Fatalf("Post err: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}
	if strings.TrimSpace(string(body)) != `{"ok":true}` {
		t.Fatalf("body: %s", string(body))
	}
}

// Доп.кейс: без токена — заголовок Authorization не устанавливается
func TestPost_NoToken_NoAuthHeader(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a := r.Header.Get("Authorization"); a != "" {
			t.Errorf("Authorization must be empty when token not provided, got: %q", a)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	if _, _, err := Post(context.Background(), ts.URL, "application/json", nil, ""); err != nil {
		t.Fatalf("Post err: %v", err)
	}
}

func TestPost_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := Post(ctx, "http://127.0.0.1:1", "application/json", nil, ""); err == nil {
		t.Fatalf("expected error for canceled context")
	}
}

func TestInspect_OK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/details/inspect" || r.URL.Query().Get("category") != "credit card" {
			t.Errorf("unexpected request: %s", r.URL)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"category":"001","icon":"dialog-password","rows":[
			{"label":"Password","sensitivity":"secret","kind":"masked"},
			{"label":"user","sensitivity":"public","kind":"pair","value":"bob"}]}`))
	}))
	defer ts.Close()

	res, err := Inspect(context.Background(), ts.URL+"/", "tok", "credit card", []byte(`{}`))
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if res.Icon != "dialog-password" || len(res.Rows) != 2 {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.Rows[0].Value != "" || res.Rows[1].Value != "bob" {
		t.Fatalf("unexpected rows: %+v", res.Rows)
	}
}

func TestInspect_ErrorBodies(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind string
		wantMsg  string
	}{
		{"decode error", http.StatusUnprocessableEntity, `{"error":"unknown_field","message":"unknown field \"x\""}`, "unknown_field", `unknown field "x"`},
		{"plain text", http.StatusUnauthorized, "unauthorized\n", "", "unauthorized"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			_, err := Inspect(context.Background(), ts.URL, "", "", []byte(`{}`))
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *Error, got %v", err)
			}
			if apiErr.Status != tt.status || apiErr.Kind != tt.wantKind || apiErr.Message != tt.wantMsg {
				t.Fatalf("unexpected error: %+v", apiErr)
			}
		})
	}
}

func TestInspect_BadJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer ts.Close()
	if _, err := Inspect(context.Background(), ts.URL, "", "", nil); err == nil {
		t.Fatalf("expected decode error")
	}
}
