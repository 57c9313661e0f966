package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := &Client{baseURL: srv.URL, httpClient: &http.Client{Timeout: 5 * time.Second}}
	return c, srv
}

func TestTranslate(t *testing.T) {
	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("tl"); got != "ru" {
			t.Errorf("tl = %q", got)
		}
		if got := r.URL.Query().Get("sl"); got != "auto" {
			t.Errorf("sl = %q", got)
		}
		w.Write([]byte(`[[["Привет, ","Hello, ",null,null,10],["мир","world",null,null,10]],null,"en"]`))
	})
	defer srv.Close()

	got, err := c.Translate(context.Background(), "Hello, world", "auto", "ru")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "Привет, мир" {
		t.Fatalf("got %q", got)
	}
}

func TestTranslateSkipsSameLanguage(t *testing.T) {
	calls := 0
	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) { calls++ })
	defer srv.Close()

	got, err := c.Translate(context.Background(), "bonjour", "fr", "fr")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "bonjour" || calls != 0 {
		t.Fatalf("got %q, calls %d", got, calls)
	}

	// auto не считается совпадением — запрос уходит.
	_, _ = c.Translate(context.Background(), "bonjour", "auto", "fr")
	if calls != 1 {
		t.Fatalf("auto source: calls %d", calls)
	}
}

func TestTranslateEmptyText(t *testing.T) {
	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request")
	})
	defer srv.Close()

	got, err := c.Translate(context.Background(), "", "auto", "ru")
	if err != nil || got != "" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestTranslateBadStatus(t *testing.T) {
	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	defer srv.Close()

	if _, err := c.Translate(context.Background(), "hi", "auto", "ru"); err == nil {
		t.Fatal("want error on 429")
	}
}

func TestJoinSegmentsRejectsGarbage(t *testing.T) {
	if _, err := joinSegments([]any{}); err == nil {
		t.Fatal("empty response must error")
	}
	if _, err := joinSegments([]any{"not-an-array"}); err == nil {
		t.Fatal("wrong shape must error")
	}
}
