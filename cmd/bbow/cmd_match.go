package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <word> [files...]",
		Short: "Count the occurrences of one word",
		Long: `Report how many times a word occurs in the inputs, ignoring case.
Words never seen report 0.

Examples:
  bbow match the book.txt
  echo "Cat cat CAT" | bbow match cat`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			word := args[0]

			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			bag, err := ingest(cmd, env, args[1:])
			if err != nil {
				return err
			}

			count := bag.MatchCount(word)
			env.logger.Debug("matched word", "word", word, "count", count)

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
					"word":  word,
					"count": count,
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", word, count)
			return nil
		},
	}
}
