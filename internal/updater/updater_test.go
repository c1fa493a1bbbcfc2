package updater

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func releaseServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/releases/latest") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != "application/vnd.github+json" {
			t.Errorf("Accept = %q", got)
		}
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
}

func TestCheckUpdateAvailable(t *testing.T) {
	srv := releaseServer(t, http.StatusOK,
		`{"tag_name": "v0.2.0", "html_url": "https://example.com/releases/v0.2.0"}`)
	defer srv.Close()

	u := New("0.1.0", WithAPIBase(srv.URL))
	result, err := u.Check()
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if !result.UpdateAvailable {
		t.Error("expected update to be available")
	}
	if result.LatestVersion != "v0.2.0" {
		t.Errorf("LatestVersion = %q, want v0.2.0", result.LatestVersion)
	}
	if result.ReleaseURL != "https://example.com/releases/v0.2.0" {
		t.Errorf("ReleaseURL = %q", result.ReleaseURL)
	}
}

func TestCheckUpToDate(t *testing.T) {
	srv := releaseServer(t, http.StatusOK, `{"tag_name": "v0.1.0"}`)
	defer srv.Close()

	result, err := New("0.1.0", WithAPIBase(srv.URL)).Check()
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if result.UpdateAvailable {
		t.Error("expected no update for matching versions")
	}
}

func TestLatestReleaseErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   string
	}{
		{"not found", http.StatusNotFound, "no releases"},
		{"rate limited", http.StatusForbidden, "rate limit"},
		{"server error", http.StatusInternalServerError, "status 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := releaseServer(t, tt.status, `{}`)
			defer srv.Close()

			_, err := New("0.1.0", WithAPIBase(srv.URL)).LatestRelease()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestCheckAndPrintBannerFromCache(t *testing.T) {
	dir := t.TempDir()
	if err := SaveCache(dir, &VersionCache{
		LatestVersion:   "v0.9.0",
		CurrentVersion:  "0.1.0",
		UpdateAvailable: true,
	}); err != nil {
		t.Fatal(err)
	}

	srv := releaseServer(t, http.StatusOK, `{"tag_name": "v0.9.0"}`)
	defer srv.Close()

	var out strings.Builder
	New("0.1.0", WithAPIBase(srv.URL)).CheckAndPrintBanner(&out, dir)

	if !strings.Contains(out.String(), "Update available: 0.1.0 -> v0.9.0") {
		t.Errorf("banner missing from output: %q", out.String())
	}
}
