// Package config loads rnsetup settings from flags, environment and an
// optional YAML file.
package config

// DefaultConfigFile is looked up in the app root when --config is not given.
const DefaultConfigFile = ".rnsetup.yaml"

// Config holds the settings that shape a run. Project and bundle names come
// from flags or prompts only.
type Config struct {
	// PlatformDir is the iOS platform directory relative to the app root.
	PlatformDir string `mapstructure:"platformDir"`

	// VendorDir is the Ruby vendor bundle directory relative to the app root.
	VendorDir string `mapstructure:"vendorDir"`

	// SkipInstall stops the run after the rename phase.
	SkipInstall bool `mapstructure:"skipInstall"`

	// RespectGitignore skips paths ignored by ios/.gitignore when rewriting.
	RespectGitignore bool `mapstructure:"respectGitignore"`

	Verbose bool `mapstructure:"verbose"`
}
