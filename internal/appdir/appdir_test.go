package appdir

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Mario Hevia":    "mario-hevia",
		"  spaced  out ": "spaced-out",
		"UPPER_case-9":   "upper_case-9",
		"weird/chars!":   "weirdchars",
		"":               "default",
		"   ":            "default",
		"!!!":            "default",
	}
	for in, want := range cases {
		require.Equal(t, want, Slug(in), "Slug(%q)", in)
	}
}

func TestForProfileLayout(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG override only applies on linux-like systems")
	}
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	paths, err := ForProfile("jobvault-test", "Mario Hevia")
	require.NoError(t, err)

	require.Equal(t, filepath.Join(paths.Profiles, "mario-hevia"), paths.Profile)
	require.Equal(t, filepath.Join(paths.Profile, "database.sqlite"), paths.DB)
	require.Equal(t, filepath.Join(paths.Profile, "config.json"), paths.Config)

	for _, dir := range []string{paths.Base, paths.Profiles, paths.Profile, paths.Cache} {
		info, err := os.Stat(dir)
		require.NoError(t, err, "missing %s", dir)
		require.True(t, info.IsDir())
	}
}

func TestForProfileAtOverridesBase(t *testing.T) {
	base := filepath.Join(t.TempDir(), "jobvault-data")

	paths, err := ForProfileAt(base, "Work Profile")
	require.NoError(t, err)

	require.Equal(t, base, paths.Base)
	require.Equal(t, filepath.Join(base, "profiles", "work-profile"), paths.Profile)
	require.Equal(t, filepath.Join(paths.Profile, "database.sqlite"), paths.DB)

	for _, dir := range []string{paths.Base, paths.Profiles, paths.Profile, paths.Cache} {
		info, err := os.Stat(dir)
		require.NoError(t, err, "missing %s", dir)
		require.True(t, info.IsDir())
	}
}

func TestForProfileIsIdempotent(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG override only applies on linux-like systems")
	}
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	first, err := ForProfile("jobvault-test", "default")
	require.NoError(t, err)
	second, err := ForProfile("jobvault-test", "default")
	require.NoError(t, err)
	require.Equal(t, first, second)
}
