package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Drive.validate(); err != nil {
		return fmt.Errorf("drive: %w", err)
	}

	if err := c.Activity.validate(); err != nil {
		return fmt.Errorf("activity: %w", err)
	}

	if err := c.Backup.validate(); err != nil {
		return fmt.Errorf("backup: %w", err)
	}

	if c.RateLimit.BackupPerMinute <= 0 {
		return fmt.Errorf("rate_limit.backup_per_minute must be > 0 (got %d)", c.RateLimit.BackupPerMinute)
	}

	return nil
}

func (d *DriveConfig) validate() error {
	set := 0
	for _, v := range []string{d.ClientID, d.ClientSecret, d.RedirectURI} {
		if v != "" {
			set++
		}
	}
	if set != 0 && set != 3 {
		return fmt.Errorf("client_id, client_secret and redirect_uri must be set together")
	}
	if d.CallTimeout <= 0 {
		return fmt.Errorf("call_timeout must be > 0 (got %s)", d.CallTimeout)
	}
	if d.RootFolder == "" {
		return fmt.Errorf("root_folder must not be empty")
	}
	return nil
}

func (a *ActivityConfig) validate() error {
	if a.DefaultLimit <= 0 {
		return fmt.Errorf("default_limit must be > 0 (got %d)", a.DefaultLimit)
	}
	if a.MaxLimit < a.DefaultLimit {
		return fmt.Errorf("max_limit must be >= default_limit (got %d < %d)", a.MaxLimit, a.DefaultLimit)
	}
	return nil
}

func (b *BackupConfig) validate() error {
	if b.DefaultKeepCount < 0 {
		return fmt.Errorf("default_keep_count must be >= 0 (got %d)", b.DefaultKeepCount)
	}
	if b.FolderName == "" || b.PatternsFolder == "" {
		return fmt.Errorf("folder_name and patterns_folder must not be empty")
	}
	if b.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", b.MaxUploadBytes)
	}
	return nil
}
