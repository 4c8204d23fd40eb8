// Package updater checks GitHub releases for newer gasprism builds and
// replaces the running binary on request.
package updater

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blang/semver"
	"github.com/cockroachdb/errors"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
)

const (
	repoSlug         = "CaptShanks/gasprism"
	installScriptURL = "https://raw.githubusercontent.com/CaptShanks/gasprism/main/install.sh"

	// CacheDir is created under the user's home directory
	CacheDir = ".gasprism"

	defaultIntervalDays = 7
)

// detectLatest is swapped out in tests to stay off the network
var detectLatest = func(slug string) (string, bool, error) {
	latest, found, err := selfupdate.DetectLatest(slug)
	if err != nil || !found {
		return "", false, err
	}
	return latest.Version.String(), true, nil
}

// CheckLatest fetches the latest release from GitHub and compares with currentVersion.
// Returns (latestVersion, hasUpdate, err). Callers never fail the main command on errors.
func CheckLatest(currentVersion string) (latestVersion string, hasUpdate bool, err error) {
	latestVersion, found, err := detectLatest(repoSlug)
	if err != nil || !found {
		return "", false, err
	}
	// Strip 'v' prefix for comparison if present in tag
	latestVersion = normalizeVersion(latestVersion)

	latestSemver, err := semver.Parse(latestVersion)
	if err != nil {
		return latestVersion, false, errors.Wrapf(err, "parse latest version %q", latestVersion)
	}
	currentSemver, err := semver.Parse(normalizeVersion(currentVersion))
	if err != nil {
		return latestVersion, false, errors.Wrapf(err, "parse current version %q", currentVersion)
	}
	return latestVersion, latestSemver.GT(currentSemver), nil
}

// Upgrade replaces the current binary with the latest release.
// On success returns the new version. On failure returns an error suitable for displaying
// the curl fallback command.
func Upgrade(currentVersion string) (newVersion string, err error) {
	v, err := semver.Parse(normalizeVersion(currentVersion))
	if err != nil {
		return "", errors.Wrapf(err, "invalid version %q", currentVersion)
	}

	latest, err := selfupdate.UpdateSelf(v, repoSlug)
	if err != nil {
		return "", errors.Wrap(err, "self-update")
	}
	return latest.Version.String(), nil
}

// CurlFallbackMessage returns the message to display when self-update fails.
func CurlFallbackMessage(reason error) string {
	return fmt.Sprintf(`Self-update failed: %v
To upgrade manually, run:
  curl -sSfL %s | sh`, reason, installScriptURL)
}

func normalizeVersion(s string) string {
	return strings.TrimPrefix(strings.TrimSpace(s), "v")
}

// updateCache holds cached update check results.
type updateCache struct {
	LastCheckEpoch int64  `json:"last_check_epoch"`
	LatestVersion  string `json:"latest_version,omitempty"`
	HasUpdate      bool   `json:"has_update"`
}

// homeDir is swapped out in tests
var homeDir = os.UserHomeDir

// cachePath returns the path to the update check cache file.
func cachePath() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, CacheDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "update-check"), nil
}

// CheckLatestWithCache checks for updates, but only if the cache interval has elapsed.
// intervalDays is the number of days between checks (default 7).
// Returns (latestVersion, hasUpdate, err). If within interval, uses cached result.
func CheckLatestWithCache(currentVersion string, intervalDays int) (latestVersion string, hasUpdate bool, err error) {
	if intervalDays <= 0 {
		intervalDays = defaultIntervalDays
	}
	interval := time.Duration(intervalDays) * 24 * time.Hour

	path, err := cachePath()
	if err != nil {
		return CheckLatest(currentVersion)
	}

	if data, err := os.ReadFile(path); err == nil {
		var cache updateCache
		if json.Unmarshal(data, &cache) == nil && time.Since(time.Unix(cache.LastCheckEpoch, 0)) < interval {
			return cache.LatestVersion, cache.HasUpdate, nil
		}
	}

	latest, hasUpdate, err := CheckLatest(currentVersion)
	if err != nil {
		return "", false, err
	}

	cache := updateCache{
		LastCheckEpoch: time.Now().Unix(),
		LatestVersion:  latest,
		HasUpdate:      hasUpdate,
	}
	if data, err := json.Marshal(cache); err == nil {
		_ = os.WriteFile(path, data, 0o644)
	}

	return latest, hasUpdate, nil
}
