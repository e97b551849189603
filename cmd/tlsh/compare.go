package main

import (
	"fmt"

	"github.com/byRen2002/tlsh-go/pkg/tlsh"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <hash1> <hash2>",
	Short: "Print the distance between two TLSH hashes",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

var compareBodyOnly bool

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().BoolVar(&compareBodyOnly, "body-only", false, "ignore the length penalty term")
}

func runCompare(cmd *cobra.Command, args []string) error {
	h1, err := tlsh.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parsing first hash: %w", err)
	}
	h2, err := tlsh.Parse(args[1])
	if err != nil {
		return fmt.Errorf("parsing second hash: %w", err)
	}

	mode := tlsh.WithLengthPenalty
	if compareBodyOnly {
		mode = tlsh.BodyOnly
	}

	fmt.Println(tlsh.Compare(h1, h2, mode))
	return nil
}
