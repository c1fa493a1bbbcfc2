package reader

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewRequiresToken(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestListSinglePage(t *testing.T) {
	var gotAuth, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{
			"count": 2,
			"nextPageCursor": "",
			"results": [
				{"id": "doc1", "title": "First", "html_content": "<p>hi</p>", "source_url": "https://a.example"},
				{"id": "doc2", "title": "Second", "summary": "short"}
			]
		}`)
	}))
	defer srv.Close()

	c, err := New("tok-123", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	after := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	docs, err := c.List(context.Background(), ListOptions{
		UpdatedAfter: after,
		Location:     "new",
		WithContent:  true,
	})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	if gotAuth != "Token tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Token tok-123")
	}
	for _, want := range []string{"location=new", "withHtmlContent=true", "updatedAfter=2026-08-24T12%3A00%3A00Z"} {
		if !containsParam(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}

	if len(docs) != 2 {
		t.Fatalf("got %d documents, want 2", len(docs))
	}
	if docs[0].Content() != "<p>hi</p>" {
		t.Errorf("doc1 Content() = %q, want html content", docs[0].Content())
	}
	if docs[1].Content() != "short" {
		t.Errorf("doc2 Content() = %q, want summary fallback", docs[1].Content())
	}
}

func TestListFollowsPagination(t *testing.T) {
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cursor := r.URL.Query().Get("pageCursor")
		calls = append(calls, cursor)
		if cursor == "" {
			fmt.Fprint(w, `{"count": 2, "nextPageCursor": "abc", "results": [{"id": "doc1"}]}`)
			return
		}
		fmt.Fprint(w, `{"count": 2, "nextPageCursor": "", "results": [{"id": "doc2"}]}`)
	}))
	defer srv.Close()

	c, _ := New("tok", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	docs, err := c.List(context.Background(), ListOptions{})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("got %d documents, want 2", len(docs))
	}
	if len(calls) != 2 || calls[1] != "abc" {
		t.Errorf("pagination calls = %v, want second call with cursor abc", calls)
	}
}

func TestListUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, _ := New("bad", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	_, err := c.List(context.Background(), ListOptions{})
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
}

func TestListRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, _ := New("tok", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	_, err := c.List(context.Background(), ListOptions{})

	var rle *RateLimitError
	if !errors.As(err, &rle) {
		t.Fatalf("error = %v, want *RateLimitError", err)
	}
	if rle.RetryAfter != 30*time.Second {
		t.Errorf("RetryAfter = %s, want 30s", rle.RetryAfter)
	}
}

func TestPing(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		c, _ := New("tok", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
		if err := c.Ping(context.Background()); err != nil {
			t.Errorf("Ping() error: %v", err)
		}
	})

	t.Run("bad token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		c, _ := New("tok", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
		if !errors.Is(c.Ping(context.Background()), ErrUnauthorized) {
			t.Error("Ping() should return ErrUnauthorized")
		}
	})
}

func TestDisplayTitle(t *testing.T) {
	d := &Document{}
	if d.DisplayTitle() != "Untitled" {
		t.Errorf("DisplayTitle() = %q, want Untitled", d.DisplayTitle())
	}
	d.Title = "A Study"
	if d.DisplayTitle() != "A Study" {
		t.Errorf("DisplayTitle() = %q, want A Study", d.DisplayTitle())
	}
}

// containsParam reports whether the raw query string contains the given
// encoded key=value pair.
func containsParam(rawQuery, param string) bool {
	for _, part := range splitQuery(rawQuery) {
		if part == param {
			return true
		}
	}
	return false
}

func splitQuery(raw string) []string {
	var parts []string
	start := 0
	for i := 0; i <= len(raw); i++ {
		if i == len(raw) || raw[i] == '&' {
			parts = append(parts, raw[start:i])
			start = i + 1
		}
	}
	return parts
}
