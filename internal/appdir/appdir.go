// Package appdir resolves the per-user, per-profile directories that hold
// the tracker's database, profile config and cache.
package appdir

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	unsafe     = regexp.MustCompile(`[^a-z0-9_-]`)
)

// Slug lowercases v and strips everything that is not filesystem-safe.
// An empty result falls back to "default".
func Slug(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	v = whitespace.ReplaceAllString(v, "-")
	v = unsafe.ReplaceAllString(v, "")
	if v == "" {
		return "default"
	}
	return v
}

// DataDir returns the OS-appropriate per-user application data directory
// for appName, creating it if needed.
func DataDir(appName string) (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("APPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			base = filepath.Join(home, "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, "Library", "Application Support")
	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	dir := filepath.Join(base, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// ProfilePaths are the locations a single profile owns.
type ProfilePaths struct {
	Base     string // app data dir
	Profiles string // <base>/profiles
	Profile  string // <base>/profiles/<slug>
	DB       string // <profile>/database.sqlite
	Config   string // <profile>/config.json
	Cache    string // <profile>/cache
}

// ForProfile builds and creates the directory layout for one profile under
// the OS default data dir.
func ForProfile(appName, profile string) (ProfilePaths, error) {
	base, err := DataDir(appName)
	if err != nil {
		return ProfilePaths{}, err
	}
	return ForProfileAt(base, profile)
}

// ForProfileAt is ForProfile with an explicit base directory, for setups
// that override the OS default location.
func ForProfileAt(base, profile string) (ProfilePaths, error) {
	if err := os.MkdirAll(base, 0o755); err != nil {
		return ProfilePaths{}, err
	}

	profiles := filepath.Join(base, "profiles")
	dir := filepath.Join(profiles, Slug(profile))
	cache := filepath.Join(dir, "cache")
	for _, d := range []string{profiles, dir, cache} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return ProfilePaths{}, err
		}
	}

	return ProfilePaths{
		Base:     base,
		Profiles: profiles,
		Profile:  dir,
		DB:       filepath.Join(dir, "database.sqlite"),
		Config:   filepath.Join(dir, "config.json"),
		Cache:    cache,
	}, nil
}
