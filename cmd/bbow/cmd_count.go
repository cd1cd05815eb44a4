package main

import (
	"encoding/json"
	"fmt"

	"github.com/nvandessel/bbow/internal/bbow"
	"github.com/spf13/cobra"
)

type countReport struct {
	Distinct uint             `json:"distinct"`
	Total    uint             `json:"total"`
	Top      []bbow.WordCount `json:"top"`
}

func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [files...]",
		Short: "Count distinct and total words",
		Long: `Build one bag of words from all inputs and report how many distinct
words it holds, how many words were read in total, and the most
frequent words.

Examples:
  bbow count book.txt                 # Summary plus top 10 words
  bbow count --top 0 a.txt b.html     # Rank every word
  cat notes.md | bbow count --json    # Read standard input`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			top := env.cfg.Report.Top
			if cmd.Flags().Changed("top") {
				top, _ = cmd.Flags().GetInt("top")
			}
			if top < 0 {
				return fmt.Errorf("--top must be non-negative, got %d", top)
			}
			minCount := env.cfg.Report.MinCount
			if cmd.Flags().Changed("min-count") {
				minCount, _ = cmd.Flags().GetUint("min-count")
			}

			bag, err := ingest(cmd, env, args)
			if err != nil {
				return err
			}

			report := countReport{
				Distinct: bag.Count(),
				Total:    bag.Total(),
				Top:      rankWords(bag, top, minCount),
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(report)
			}

			fmt.Fprintf(out, "Distinct words: %d\n", report.Distinct)
			fmt.Fprintf(out, "Total words:    %d\n", report.Total)
			if len(report.Top) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Most frequent:")
				writeCounts(out, report.Top)
			}
			return nil
		},
	}

	cmd.Flags().Int("top", 10, "Number of ranked words to show (0 = all)")
	cmd.Flags().Uint("min-count", 1, "Hide words seen fewer times than this")

	return cmd
}
