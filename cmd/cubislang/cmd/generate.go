package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	cubislang "github.com/CUBETIQ/cubis-lang-go"
)

var (
	genSource  string
	genOut     string
	genBatch   bool
	genTimeout time.Duration
)

var generateCmd = &cobra.Command{
	Use:   "generate <source-locale> <target-locale>",
	Short: "Generate a machine translated locale file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := cubislang.NewGenerator(cubislang.NewGoogleTranslate())
		if err != nil {
			return err
		}
		gen.SetDebug(verbose)

		source := genSource
		if source == "" {
			source = fmt.Sprintf("%s/%s.json", resourcePath, args[0])
		}
		out := genOut
		if out == "" {
			out = fmt.Sprintf("%s/%s.json", resourcePath, args[1])
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), genTimeout)
		defer cancel()

		if genBatch {
			err = gen.GenerateFileBatch(ctx, source, args[0], args[1], out)
		} else {
			err = gen.GenerateFile(ctx, source, args[0], args[1], out)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&genSource, "source", "", "source locale file (defaults to <path>/<source-locale>.json)")
	generateCmd.Flags().StringVar(&genOut, "out", "", "output file (defaults to <path>/<target-locale>.json)")
	generateCmd.Flags().BoolVar(&genBatch, "batch", false, "translate in a single batch call")
	generateCmd.Flags().DurationVar(&genTimeout, "timeout", 5*time.Minute, "overall translation timeout")
	rootCmd.AddCommand(generateCmd)
}
