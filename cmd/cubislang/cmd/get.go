package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cubislang "github.com/CUBETIQ/cubis-lang-go"
)

var getLocale string

var getCmd = &cobra.Command{
	Use:   "get <key> [args...]",
	Short: "Resolve a key for a locale",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := newLang(cubislang.WithDefaultLocale(getLocale))
		if err != nil {
			return err
		}
		defer lang.Close()

		extra := make([]any, 0, len(args)-1)
		for _, a := range args[1:] {
			extra = append(extra, a)
		}
		fmt.Fprintln(cmd.OutOrStdout(), lang.Get(args[0], extra...))
		return nil
	},
}

func init() {
	getCmd.Flags().StringVarP(&getLocale, "locale", "l", "en", "locale to resolve against")
	rootCmd.AddCommand(getCmd)
}
