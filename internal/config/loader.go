package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jakoblorz/rnsetup/internal/filesystem"
	"github.com/jakoblorz/rnsetup/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Environment variable prefix for rnsetup configuration.
const envPrefix = "RNSETUP"

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"platform-dir":      "platformDir",
	"vendor-dir":        "vendorDir",
	"skip-install":      "skipInstall",
	"respect-gitignore": "respectGitignore",
	"verbose":           "verbose",
}

// Loader handles loading and merging configuration from multiple sources.
// Precedence: flags, environment, config file, defaults.
type Loader struct {
	v    *viper.Viper
	used string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("platformDir", "RNSETUP_PLATFORM_DIR")
	_ = v.BindEnv("vendorDir", "RNSETUP_VENDOR_DIR")
	_ = v.BindEnv("skipInstall", "RNSETUP_SKIP_INSTALL")
	_ = v.BindEnv("respectGitignore", "RNSETUP_RESPECT_GITIGNORE")
	_ = v.BindEnv("verbose", "RNSETUP_VERBOSE")

	v.SetDefault("platformDir", models.DefaultPlatformDir)
	v.SetDefault("vendorDir", models.DefaultVendorDir)
	v.SetDefault("skipInstall", false)
	v.SetDefault("respectGitignore", false)
	v.SetDefault("verbose", false)

	return &Loader{v: v}
}

// BindFlags binds the known flags of cmd so that explicitly set flags win.
func (l *Loader) BindFlags(cmd *cobra.Command) error {
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}
	return nil
}

// Load reads configFile from fsys if it exists and returns the merged
// configuration. A missing file is only an error when required is set.
func (l *Loader) Load(fsys filesystem.FileSystem, configFile string, required bool) (*Config, error) {
	if configFile != "" {
		if fsys.Exists(configFile) {
			data, err := fsys.ReadFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
			l.v.SetConfigType("yaml")
			if err := l.v.ReadConfig(bytes.NewReader(data)); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", configFile, err)
			}
			l.used = configFile
		} else if required {
			return nil, fmt.Errorf("reading config file: %s does not exist", configFile)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ConfigFileUsed returns the config file that was read, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.used
}
