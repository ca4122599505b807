package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cubislang "github.com/CUBETIQ/cubis-lang-go"
)

var (
	resourcePath string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "cubislang",
	Short: "Inspect and maintain locale files",
	Long: `cubislang works with directories of locale files (JSON, TOML or
YAML trees of dot addressable keys): look up keys, diff locales,
and generate or merge machine translated locale files.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&resourcePath, "path", "p", "./resources/lang/", "directory holding locale files")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// newLang builds an instance from the environment plus the global
// flags. Flags win over environment values.
func newLang(extra ...cubislang.Option) (*cubislang.Lang, error) {
	opts, err := cubislang.OptionsFromEnv()
	if err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if resourcePath != "" {
		opts = append(opts, cubislang.WithResourcePath(resourcePath))
	}
	if verbose {
		opts = append(opts, cubislang.WithDebug(true))
	}
	opts = append(opts, extra...)
	return cubislang.New(opts...), nil
}
