package main

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/nvandessel/bbow/internal/bbow"
	"github.com/nvandessel/bbow/internal/logging"
	"github.com/nvandessel/bbow/internal/textsource"
	"github.com/spf13/cobra"
)

// ingest builds one bag from every input. With no inputs it reads the
// command's standard input.
func ingest(cmd *cobra.Command, env *cliEnv, inputs []string) (*bbow.Bag, error) {
	if len(inputs) == 0 {
		inputs = []string{textsource.StdinName}
	}

	opts := env.cfg.SourceOptions()
	bag := bbow.New()

	for _, name := range inputs {
		var doc *textsource.Document
		var err error
		if name == textsource.StdinName {
			doc, err = textsource.Read(name, cmd.InOrStdin(), opts)
		} else {
			doc, err = textsource.Load(name, opts)
		}
		if err != nil {
			env.logger.Log(cmd.Context(), logging.LevelTrace, "input rejected",
				"input", name, "stack", textsource.StackTrace(err))
			return nil, fmt.Errorf("reading input: %w", err)
		}

		before := bag.Count()
		bag.ExtendFromText(doc.Text)
		env.logger.Debug("ingested input",
			"input", doc.Name,
			"format", doc.Format,
			"bytes", doc.Size,
			"new_words", bag.Count()-before)
	}

	env.logger.Debug("bag built", "inputs", len(inputs), "distinct", bag.Count(), "total", bag.Total())
	return bag, nil
}

// rankWords returns the most frequent words seen at least minCount times,
// at most top of them (top <= 0 keeps all).
func rankWords(bag *bbow.Bag, top int, minCount uint) []bbow.WordCount {
	ranked := bag.Top(0)

	kept := ranked[:0]
	for _, wc := range ranked {
		if wc.Count >= minCount {
			kept = append(kept, wc)
		}
	}

	if top > 0 && len(kept) > top {
		kept = kept[:top]
	}
	return kept
}

// writeCounts prints one aligned "word  count" line per entry.
func writeCounts(w io.Writer, counts []bbow.WordCount) {
	width := 0
	for _, wc := range counts {
		if n := utf8.RuneCountInString(wc.Word); n > width {
			width = n
		}
	}
	for _, wc := range counts {
		fmt.Fprintf(w, "  %-*s  %d\n", width, wc.Word, wc.Count)
	}
}
