package main

import (
	"fmt"
	"os"

	"github.com/byRen2002/tlsh-go/pkg/tlsh"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var hashCmd = &cobra.Command{
	Use:   "hash [file]",
	Short: "Compute the TLSH fuzzy hash of a file",
	Long: `hash reads a file (or stdin, if no file is given) and prints its
TLSH fuzzy hash in the standard "T1"-prefixed hex form.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHash,
}

func init() {
	rootCmd.AddCommand(hashCmd)

	hashCmd.Flags().Bool("strict", false, "require at least 256 bytes of input")
	viper.BindPFlag("hash.strict", hashCmd.Flags().Lookup("strict"))
}

func runHash(cmd *cobra.Command, args []string) error {
	r := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	opts := tlsh.DefaultGeneratorOptions()
	opts.StrictInputLength = viper.GetBool("hash.strict")

	h, err := tlsh.HashReader(r, opts)
	if err != nil {
		return fmt.Errorf("computing hash: %w", err)
	}

	fmt.Println(h.String())
	return nil
}
