package netx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDownload(t *testing.T) {
	t.Run("success 200 OK", func(t *testing.T) {
		var gotMethod string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			_, _ = w.Write([]byte(`{"version":2}`))
		}))
		defer ts.Close()

		body, err := Download(context.Background(), ts.Client(), ts.URL+"/vaults/alice/2?X-Amz-Signature=x")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotMethod != http.MethodGet {
			t.Fatalf("method = %s", gotMethod)
		}
		if string(body) != `{"version":2}` {
			t.Fatalf("body = %q", body)
		}
	})

	t.Run("non-200 includes status and body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("SignatureDoesNotMatch"))
		}))
		defer ts.Close()

		_, err := Download(context.Background(), nil, ts.URL)
		if err == nil || !strings.Contains(err.Error(), "403") || !strings.Contains(err.Error(), "SignatureDoesNotMatch") {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("bad url", func(t *testing.T) {
		if _, err := Download(context.Background(), nil, "://nope"); err == nil {
			t.Fatal("expected error")
		}
	})
}
