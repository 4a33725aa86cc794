package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/vaultshare/internal/flagx"
	"github.com/dmitrijs2005/vaultshare/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept "90s" style
// strings or integer nanoseconds. Absent fields leave the current value.
type JsonConfig struct {
	EndpointAddrGRPC string         `json:"endpoint_addr_grpc"`
	Store            string         `json:"store"`
	DatabaseDSN      string         `json:"database_dsn"`
	SecretKey        string         `json:"secret_key"`
	S3RootUser       string         `json:"s3_root_user"`
	S3RootPassword   string         `json:"s3_root_password"`
	S3Bucket         string         `json:"s3_bucket"`
	S3Region         string         `json:"s3_region"`
	S3BaseEndpoint   string         `json:"s3_base_endpoint"`
	ArchiveEnabled   *bool          `json:"archive_enabled"`
	ArchiveURLExpiry timex.Duration `json:"archive_url_expiry"`
	DefaultShareTTL  timex.Duration `json:"default_share_ttl"`
	SweepInterval    timex.Duration `json:"sweep_interval"`
	NotifyBuffer     int            `json:"notify_buffer"`
	LogLevel         string         `json:"log_level"`
}

// parseJSON overlays the file named by -c/-config onto config. Without
// either flag nothing is loaded.
func parseJSON(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.Store, c.Store)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.LogLevel, c.LogLevel)
	if c.ArchiveEnabled != nil {
		config.ArchiveEnabled = *c.ArchiveEnabled
	}
	setDuration(&config.ArchiveURLExpiry, c.ArchiveURLExpiry)
	setDuration(&config.DefaultShareTTL, c.DefaultShareTTL)
	setDuration(&config.SweepInterval, c.SweepInterval)
	if c.NotifyBuffer != 0 {
		config.NotifyBuffer = c.NotifyBuffer
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = time.Duration(v.Duration)
	}
}
