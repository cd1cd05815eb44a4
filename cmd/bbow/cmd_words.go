package main

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/nvandessel/bbow/internal/bbow"
	"github.com/spf13/cobra"
)

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words [files...]",
		Short: "List every distinct word with its count",
		Long: `List the distinct words of the inputs in alphabetical order.

With --ownership each word also shows whether its key borrows the input
text (the word already appeared in lowercase) or owns a lowercase copy.

Examples:
  bbow words book.txt
  bbow words --ownership --json notes.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			ownership, _ := cmd.Flags().GetBool("ownership")

			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			bag, err := ingest(cmd, env, args)
			if err != nil {
				return err
			}

			entries := bag.Entries()
			out := cmd.OutOrStdout()

			if jsonOut {
				if ownership {
					return json.NewEncoder(out).Encode(entries)
				}
				counts := make([]bbow.WordCount, 0, len(entries))
				for _, e := range entries {
					counts = append(counts, bbow.WordCount{Word: e.Word, Count: e.Count})
				}
				return json.NewEncoder(out).Encode(counts)
			}

			if len(entries) == 0 {
				fmt.Fprintln(out, "No words found.")
				return nil
			}

			width := 0
			for _, e := range entries {
				if n := utf8.RuneCountInString(e.Word); n > width {
					width = n
				}
			}
			for _, e := range entries {
				if ownership {
					fmt.Fprintf(out, "%-*s  %d  %s\n", width, e.Word, e.Count, ownershipLabel(e.Owned))
				} else {
					fmt.Fprintf(out, "%-*s  %d\n", width, e.Word, e.Count)
				}
			}
			return nil
		},
	}

	cmd.Flags().Bool("ownership", false, "Show whether each key is borrowed or owned")

	return cmd
}

func ownershipLabel(owned bool) string {
	if owned {
		return "owned"
	}
	return "borrowed"
}
