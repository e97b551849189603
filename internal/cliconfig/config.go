// Package cliconfig loads the CLI's YAML configuration file through
// viper, the way the teacher's pkg/config package loads its detector
// configuration, generalized to the scan pipeline's settings.
package cliconfig

import (
	"os"

	"github.com/spf13/viper"
)

// Config is the root configuration structure for the tlsh CLI's scan
// command. Individual flags on cobra subcommands bind over these
// defaults via viper.BindPFlag.
type Config struct {
	Scan     ScanConfig     `mapstructure:"scan"`
	Hash     HashConfig     `mapstructure:"hash"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ScanConfig controls the directory/repository walking worker pool.
type ScanConfig struct {
	Workers      int      `mapstructure:"workers"`
	CacheSize    int      `mapstructure:"cache_size"`
	Threshold    int      `mapstructure:"threshold"`
	Extensions   []string `mapstructure:"extensions"`
	OutputPath   string   `mapstructure:"output_path"`
}

// HashConfig controls the defaults used by `tlsh hash`.
type HashConfig struct {
	Strict       bool `mapstructure:"strict"`
	ChecksumLen  int  `mapstructure:"checksum_len"`
}

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	Debug   bool   `mapstructure:"debug"`
	LogPath string `mapstructure:"log_path"`
}

// Default returns the configuration used when no config file is found.
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			Workers:    0, // 0 lets scan.New pick its default worker count
			CacheSize:  1000,
			Threshold:  100,
			Extensions: []string{".c", ".cc", ".cpp", ".cxx", ".h", ".hpp", ".go", ".java", ".py"},
			OutputPath: "scan-results.json",
		},
		Hash: HashConfig{
			Strict:      false,
			ChecksumLen: 1,
		},
		Logging: LoggingConfig{
			Debug:   false,
			LogPath: "tlsh.log",
		},
	}
}

// Load reads configPath (if non-empty and present) over the defaults
// and unmarshals the merged result. A missing configPath is not an
// error: the defaults apply as-is, matching a fresh install with no
// config file yet.
func Load(configPath string) (*Config, error) {
	def := Default()

	v := viper.New()
	v.SetDefault("scan.workers", def.Scan.Workers)
	v.SetDefault("scan.cache_size", def.Scan.CacheSize)
	v.SetDefault("scan.threshold", def.Scan.Threshold)
	v.SetDefault("scan.extensions", def.Scan.Extensions)
	v.SetDefault("scan.output_path", def.Scan.OutputPath)
	v.SetDefault("hash.strict", def.Hash.Strict)
	v.SetDefault("hash.checksum_len", def.Hash.ChecksumLen)
	v.SetDefault("logging.debug", def.Logging.Debug)
	v.SetDefault("logging.log_path", def.Logging.LogPath)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			_, notFound := err.(viper.ConfigFileNotFoundError)
			if !notFound && !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
