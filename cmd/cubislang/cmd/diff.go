package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var diffJSON bool

var diffCmd = &cobra.Command{
	Use:   "diff <reference> <target>",
	Short: "List keys present in the reference locale but missing from the target",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := newLang()
		if err != nil {
			return err
		}
		defer lang.Close()

		if diffJSON {
			tree := lang.MissingAsTree(args[0], args[1])
			out, err := json.MarshalIndent(tree, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		missing := lang.MissingWithValues(args[0], args[1])
		if len(missing) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is complete against %s\n", args[1], args[0])
			return nil
		}
		for _, key := range lang.FindMissingKeys(args[0], args[1]) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", key, missing[key])
		}
		return nil
	},
}

func init() {
	diffCmd.Flags().BoolVar(&diffJSON, "json", false, "print missing keys as a nested JSON tree")
	rootCmd.AddCommand(diffCmd)
}
