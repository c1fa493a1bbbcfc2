package updater

import (
	"fmt"
	"io"
	"time"

	"github.com/feynman-labs/feynman/internal/branding"
)

// CheckAndPrintBanner prints an update banner if the cached check found a
// newer version. It never blocks: when the cache is stale a background
// goroutine refreshes it for the next invocation.
func (u *Updater) CheckAndPrintBanner(w io.Writer, configDir string) {
	cache, err := LoadCache(configDir)
	if err != nil {
		// A broken cache should never interfere with the command itself.
		return
	}

	if cache != nil && cache.UpdateAvailable {
		PrintUpdateBanner(w, cache.CurrentVersion, cache.LatestVersion)
	}

	if IsCacheStale(cache, DefaultCacheMaxAge) {
		go u.refreshCache(configDir)
	}
}

// PrintUpdateBanner prints the update notification to w.
func PrintUpdateBanner(w io.Writer, current, latest string) {
	fmt.Fprintf(w, "\nUpdate available: %s -> %s\n", current, latest)
	fmt.Fprintf(w, "    Run `%s update` for details\n\n", branding.CLIName())
}

// refreshCache fetches the latest version and rewrites the cache file.
// Runs in a background goroutine and never fails loudly.
func (u *Updater) refreshCache(configDir string) {
	result, err := u.Check()
	if err != nil {
		return
	}

	_ = SaveCache(configDir, &VersionCache{
		LatestVersion:   result.LatestVersion,
		CurrentVersion:  result.CurrentVersion,
		CheckedAt:       time.Now(),
		UpdateAvailable: result.UpdateAvailable,
	})
}
