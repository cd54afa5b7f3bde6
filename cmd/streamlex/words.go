package main

import (
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/coregx/streamlex"
	"github.com/coregx/streamlex/predicate"
)

type wordCount struct {
	word  string
	count int
}

func newWordsCmd(opts *options) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "words [FILE]",
		Short: "Count word frequencies",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, closeFn, err := opts.open(cmd.Context(), args)
			if err != nil {
				return err
			}
			defer closeFn()

			counts, total, err := countWords(r)
			if err != nil {
				return err
			}
			opts.dumpStats(r)

			if top > 0 && len(counts) > top {
				counts = counts[:top]
			}
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Word", "Count"})
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetBorder(false)
			for _, wc := range counts {
				table.Append([]string{wc.word, strconv.Itoa(wc.count)})
			}
			table.SetFooter([]string{"Total", strconv.Itoa(total)})
			table.Render()
			return nil
		},
	}
	cmd.Flags().IntVarP(&top, "top", "n", 20, "Show only the most frequent words (0 for all)")
	return cmd
}

// countWords returns case-folded alphanumeric words by descending frequency
// and the total word count.
func countWords(r *streamlex.Reader) ([]wordCount, int, error) {
	freq := make(map[string]int)
	total := 0
	skip := predicate.Not(predicate.Alphanumeric)
	for {
		if _, err := r.TakeWhile(skip); err != nil {
			return nil, 0, err
		}
		word, err := r.TakeWhile(predicate.Alphanumeric)
		if err != nil {
			return nil, 0, err
		}
		if word.Span.IsEmpty() {
			break
		}
		// The span aliases the read buffer; copy before keeping it.
		freq[strings.ToLower(word.Span.Clone())]++
		total++
		r.Compact()
	}

	counts := make([]wordCount, 0, len(freq))
	for w, c := range freq {
		counts = append(counts, wordCount{word: w, count: c})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].word < counts[j].word
	})
	return counts, total, nil
}
