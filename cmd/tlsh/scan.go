package main

import (
	"context"
	"fmt"

	"github.com/byRen2002/tlsh-go/internal/common/logger"
	"github.com/byRen2002/tlsh-go/internal/scan"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var scanCmd = &cobra.Command{
	Use:   "scan <target-dir>",
	Short: "Scan a directory for files similar to a known corpus",
	Long: `scan hashes every file under <target-dir> and every file under the
directory given by --known, then reports, for each target file, which
corpus files lie within the similarity threshold. With --repo, the
corpus is cloned from a git URL before scanning.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringP("known", "k", "./known-files", "directory containing the known-file corpus")
	scanCmd.Flags().String("repo", "", "git URL to clone into --known before scanning")
	scanCmd.Flags().StringP("output", "o", "scan-results.json", "output file for scan results")
	scanCmd.Flags().IntP("workers", "w", 4, "number of parallel workers")
	scanCmd.Flags().Int("threshold", 100, "maximum distance considered a match")

	viper.BindPFlag("scan.known_files", scanCmd.Flags().Lookup("known"))
	viper.BindPFlag("scan.repo", scanCmd.Flags().Lookup("repo"))
	viper.BindPFlag("scan.output_path", scanCmd.Flags().Lookup("output"))
	viper.BindPFlag("scan.workers", scanCmd.Flags().Lookup("workers"))
	viper.BindPFlag("scan.threshold", scanCmd.Flags().Lookup("threshold"))
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	targetDir := args[0]
	knownDir := viper.GetString("scan.known_files")

	if repoURL := viper.GetString("scan.repo"); repoURL != "" {
		path, err := scan.CloneRepo(ctx, scan.CloneOptions{URL: repoURL, Dest: knownDir, Depth: 1})
		if err != nil {
			return fmt.Errorf("cloning corpus repository: %w", err)
		}
		knownDir = path
	}

	scanner := scan.New(scan.Options{
		Workers:    viper.GetInt("scan.workers"),
		Threshold:  viper.GetInt("scan.threshold"),
		Extensions: cfg.Scan.Extensions,
		CacheSize:  cfg.Scan.CacheSize,
	})

	logger.Info("starting scan",
		zap.String("target", targetDir),
		zap.String("known", knownDir))

	results, err := scanner.Scan(ctx, targetDir, knownDir)
	if err != nil {
		return err
	}

	outputPath := viper.GetString("scan.output_path")
	if err := scan.SaveResults(results, outputPath); err != nil {
		return err
	}

	logger.Info("scan complete",
		zap.Int("targets", len(results)),
		zap.String("output", outputPath))
	return nil
}
