// Package config loads the CLI's layered configuration: defaults, an
// optional YAML file, and environment variable overrides, the same
// flag-plus-viper layering the project's earlier live-dashboard tooling
// used.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is every knob the CLI and preview server read.
type Config struct {
	InputPath  string `mapstructure:"input_path"`
	OutputDir  string `mapstructure:"output_dir"`
	LogFormat  string `mapstructure:"log_format"` // "text" or "gcp"
	BucketName string `mapstructure:"bucket_name"`
	WebhookURL string `mapstructure:"webhook_url"`
	SecretName string `mapstructure:"secret_name"`
	PreviewAddr string `mapstructure:"preview_addr"`
	SnakeLength int    `mapstructure:"snake_length"`
	InitialPose string `mapstructure:"initial_pose"` // "horizontal" or "single_point"
}

// Default returns the configuration's baked-in defaults, used before any
// file or environment overrides are applied.
func Default() Config {
	return Config{
		InputPath:   "contributions.json",
		OutputDir:   ".",
		LogFormat:   "text",
		PreviewAddr: ":8080",
		SnakeLength: 4,
		InitialPose: "horizontal",
	}
}

// Load reads configFile (if non-empty) over the defaults, then applies
// GHSNAKE_-prefixed environment variable overrides, e.g. GHSNAKE_BUCKET_NAME.
func Load(configFile string) (Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("input_path", def.InputPath)
	v.SetDefault("output_dir", def.OutputDir)
	v.SetDefault("log_format", def.LogFormat)
	v.SetDefault("bucket_name", def.BucketName)
	v.SetDefault("webhook_url", def.WebhookURL)
	v.SetDefault("secret_name", def.SecretName)
	v.SetDefault("preview_addr", def.PreviewAddr)
	v.SetDefault("snake_length", def.SnakeLength)
	v.SetDefault("initial_pose", def.InitialPose)

	v.SetEnvPrefix("ghsnake")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}
