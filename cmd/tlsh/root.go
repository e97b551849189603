package main

import (
	"github.com/byRen2002/tlsh-go/internal/cliconfig"
	"github.com/byRen2002/tlsh-go/internal/common/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	debug   bool
	cfg     *cliconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "tlsh",
	Short: "Compute and compare TLSH fuzzy hashes",
	Long: `tlsh computes Trend Micro Locality Sensitive Hashes for files and
streams, compares them for approximate similarity, and scans directory
trees (or freshly cloned repositories) for near-duplicate files.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := cliconfig.Load(cfgFile)
		if err != nil {
			return err
		}
		if debug {
			loaded.Logging.Debug = true
		}
		cfg = loaded
		// Expose the loaded values as defaults of the global viper the
		// subcommands read, so flags that are not set fall back to them.
		viper.SetDefault("scan.workers", cfg.Scan.Workers)
		viper.SetDefault("scan.threshold", cfg.Scan.Threshold)
		viper.SetDefault("scan.output_path", cfg.Scan.OutputPath)
		viper.SetDefault("hash.strict", cfg.Hash.Strict)
		return logger.Init(cfg.Logging.Debug, cfg.Logging.LogPath)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	viper.BindPFlag("logging.debug", rootCmd.PersistentFlags().Lookup("debug"))
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
