package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/mariohevia/JobVault-Libre/internal/domain"
	"github.com/mariohevia/JobVault-Libre/internal/errs"
)

// ProfileConfig is the per-profile config.json. All fields are optional;
// a missing file means defaults.
type ProfileConfig struct {
	DisplayName string `json:"display_name,omitempty"`

	// DefaultStatus is applied when a create request omits status.
	DefaultStatus domain.Status `json:"default_status,omitempty"`
}

func DefaultProfileConfig() ProfileConfig {
	return ProfileConfig{DefaultStatus: domain.StatusApplied}
}

// LoadProfile reads config.json at path. A missing file yields defaults;
// malformed content is a validation error with recovery hints.
func LoadProfile(path string) (ProfileConfig, error) {
	cfg := DefaultProfileConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errs.Internal("config.LoadProfile", "read profile config", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultProfileConfig(), errs.New(
			errs.CodeValidation, "config.LoadProfile", "profile config is not valid JSON", err,
		).WithTroubleshooting(
			"Check if your configuration file is valid JSON format",
			"Try deleting the configuration file to reset to defaults",
			"Restore a backup of your configuration file if available",
		)
	}

	if cfg.DefaultStatus == "" {
		cfg.DefaultStatus = domain.StatusApplied
	}
	if !cfg.DefaultStatus.Valid() {
		return DefaultProfileConfig(), errs.Validation(
			"config.LoadProfile", "unknown default_status "+string(cfg.DefaultStatus),
		).WithTroubleshooting(
			"Set default_status to one of the known statuses",
			"Try deleting the configuration file to reset to defaults",
		)
	}
	return cfg, nil
}

// SaveProfile writes config.json at path.
func SaveProfile(path string, cfg ProfileConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errs.Internal("config.SaveProfile", "encode profile config", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errs.Internal("config.SaveProfile", "write profile config", err)
	}
	return nil
}
