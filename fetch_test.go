package l10n

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPFetcher_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/freecad.zip" {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, "PK")
	}))
	defer srv.Close()

	body, size, err := NewHTTPFetcher().Get(context.Background(), srv.URL+"/freecad.zip")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	defer body.Close()
	data, _ := io.ReadAll(body)
	if string(data) != "PK" || size != 2 {
		t.Errorf("Get() = %q (size %d)", data, size)
	}

	_, _, err = (&HTTPFetcher{}).Get(context.Background(), srv.URL+"/xx.png")
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("Get() on a missing resource error = %v", err)
	}
}

func TestHTTPFetcher_GetCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := NewHTTPFetcher().Get(ctx, srv.URL); err == nil {
		t.Error("Get() with a canceled context returned no error")
	}
}
