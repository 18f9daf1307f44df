package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all settings for the compliance document service.
type Config struct {
	ServerPort             string `mapstructure:"server_port"`
	Environment            string `mapstructure:"environment"`
	LogLevel               string `mapstructure:"log_level"`
	TessdataPath           string `mapstructure:"tessdata_path"`
	MaxFileSize            int64  `mapstructure:"max_file_size"`
	MaxFilesPerRequest     int    `mapstructure:"max_files_per_request"`
	MinTextLength          int    `mapstructure:"min_text_length"`
	ExpiryGraceDays        int    `mapstructure:"expiry_grace_days"`
	InspectionValidityDays int    `mapstructure:"inspection_validity_days"`
}

// Load reads configuration from the environment with development defaults.
// Every key can be overridden with a DOCCHECK_ prefixed variable, e.g.
// DOCCHECK_SERVER_PORT=9090.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server_port", "8080")
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("tessdata_path", "/usr/share/tesseract-ocr/5/tessdata/")
	v.SetDefault("max_file_size", int64(10*1024*1024))
	v.SetDefault("max_files_per_request", 10)
	v.SetDefault("min_text_length", 50)
	v.SetDefault("expiry_grace_days", 30)
	v.SetDefault("inspection_validity_days", 365)

	v.SetEnvPrefix("DOCCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
