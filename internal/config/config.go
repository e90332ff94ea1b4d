package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Defaults match the paths the original reporting pipeline used, so running
// with zero configuration reads and writes the same files.
const (
	DefaultInputPath  = "accuracy-reports/aggregated-accuracy-values.csv"
	DefaultOutputPath = "ACCURACY_TABLE.md"
)

// Global configuration structure.
type Global struct {
	InputPath       string `mapstructure:"input_path" yaml:"input_path"`
	OutputPath      string `mapstructure:"output_path" yaml:"output_path"`
	ManifestPath    string `mapstructure:"manifest_path" yaml:"manifest_path"`
	ManifestEnabled bool   `mapstructure:"manifest_enabled" yaml:"manifest_enabled"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.accutable/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".accutable")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("ACCUTABLE")
	v.AutomaticEnv()

	v.SetDefault("input_path", DefaultInputPath)
	v.SetDefault("output_path", DefaultOutputPath)
	v.SetDefault("manifest_enabled", true)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".accutable")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve manifest_path default: ~/.accutable/runs.yaml
	if c.ManifestPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		c.ManifestPath = filepath.Join(home, ".accutable", "runs.yaml")
	}
	return &c, nil
}
