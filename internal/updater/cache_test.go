package updater

import (
	"testing"
	"time"
)

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()

	saved := &VersionCache{
		LatestVersion:   "v0.3.0",
		CurrentVersion:  "0.2.0",
		CheckedAt:       time.Now().Truncate(time.Second),
		UpdateAvailable: true,
	}
	if err := SaveCache(dir, saved); err != nil {
		t.Fatalf("SaveCache failed: %v", err)
	}

	loaded, err := LoadCache(dir)
	if err != nil {
		t.Fatalf("LoadCache failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("LoadCache returned nil for existing cache")
	}
	if loaded.LatestVersion != saved.LatestVersion {
		t.Errorf("LatestVersion = %q, want %q", loaded.LatestVersion, saved.LatestVersion)
	}
	if !loaded.UpdateAvailable {
		t.Error("UpdateAvailable not preserved")
	}
}

func TestLoadCacheMissing(t *testing.T) {
	cache, err := LoadCache(t.TempDir())
	if err != nil {
		t.Fatalf("LoadCache failed: %v", err)
	}
	if cache != nil {
		t.Errorf("expected nil cache for missing file, got %+v", cache)
	}
}

func TestIsCacheStale(t *testing.T) {
	if !IsCacheStale(nil, time.Hour) {
		t.Error("nil cache should be stale")
	}

	fresh := &VersionCache{CheckedAt: time.Now()}
	if IsCacheStale(fresh, time.Hour) {
		t.Error("fresh cache should not be stale")
	}

	old := &VersionCache{CheckedAt: time.Now().Add(-25 * time.Hour)}
	if !IsCacheStale(old, DefaultCacheMaxAge) {
		t.Error("day-old cache should be stale")
	}
}
