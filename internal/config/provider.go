package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/palisade-org/palisade/internal/domain/config"
)

// Provider creates the RuntimeConfig for Wire dependency injection.
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	dataDir := v.GetString("data_dir")
	if dataDir == "" {
		dataDir = ".palisade"
	}
	if !filepath.IsAbs(dataDir) {
		abs, err := filepath.Abs(dataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data dir: %w", err)
		}
		dataDir = abs
	}

	cfg := &config.RuntimeConfig{
		DataDir:       dataDir,
		ArtifactsPath: v.GetString("artifacts"),
		Debug:         v.GetBool("debug"),
		JSON:          v.GetBool("json"),
		Timeout:       v.GetDuration("timeout"),
		Confirmations: v.GetUint64("confirmations"),
		ListenAddr:    v.GetString("listen"),
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Minute
	}
	if cfg.Confirmations == 0 {
		cfg.Confirmations = 1
	}
	if cfg.ArtifactsPath == "" {
		cfg.ArtifactsPath = filepath.Join(dataDir, "artifacts.json")
	}

	networks, err := LoadNetworks(dataDir)
	if err != nil {
		return nil, err
	}
	cfg.Networks = networks

	return cfg, nil
}

// SetupViper initializes viper with env bindings and defaults.
func SetupViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("PALISADE")
	v.AutomaticEnv()

	v.SetDefault("data_dir", envOr("PALISADE_DATA_DIR", ".palisade"))
	v.SetDefault("timeout", 5*time.Minute)
	v.SetDefault("confirmations", 1)
	v.SetDefault("listen", "127.0.0.1:8091")

	return v
}

// BindGlobalFlags copies changed cobra flags into viper so flag values win
// over environment and defaults.
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "debug", "json", "timeout", "confirmations", "data-dir", "artifacts", "listen":
			key := f.Name
			if key == "data-dir" {
				key = "data_dir"
			}
			v.Set(key, f.Value.String())
		}
	})
}

func envOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
