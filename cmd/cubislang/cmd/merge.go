package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	cubislang "github.com/CUBETIQ/cubis-lang-go"
)

var mergeTimeout time.Duration

var mergeCmd = &cobra.Command{
	Use:   "merge <source-locale> <target-locale>",
	Short: "Fill the gaps of a locale file with machine translated values",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := cubislang.NewGenerator(cubislang.NewGoogleTranslate())
		if err != nil {
			return err
		}
		gen.SetDebug(verbose)

		source := fmt.Sprintf("%s/%s.json", resourcePath, args[0])
		target := fmt.Sprintf("%s/%s.json", resourcePath, args[1])

		ctx, cancel := context.WithTimeout(cmd.Context(), mergeTimeout)
		defer cancel()

		if err := gen.MergeFile(ctx, source, target, args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "merged into %s\n", target)
		return nil
	},
}

func init() {
	mergeCmd.Flags().DurationVar(&mergeTimeout, "timeout", 5*time.Minute, "overall translation timeout")
	rootCmd.AddCommand(mergeCmd)
}
