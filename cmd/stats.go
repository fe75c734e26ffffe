package cmd

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		ctx := cmd.Context()

		all, err := st.Progress().All(ctx)
		if err != nil {
			return err
		}
		if len(all) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No practice recorded yet. Try: verbo play")
		} else {
			sort.Slice(all, func(i, j int) bool { return all[i].Strength < all[j].Strength })

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ITEM\tSTRENGTH\tSEEN\tCORRECT")
			for _, p := range all {
				fmt.Fprintf(w, "%s\t%.2f\t%d\t%d\n",
					strings.TrimPrefix(p.ItemID, "verb:"), p.Strength, p.Seen, p.Correct)
			}
			if err := w.Flush(); err != nil {
				return err
			}
		}

		llm, err := st.Events().LLMStats(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(),
			"\nLLM requests: %d (%d failed), tokens in/out: %d/%d\n",
			llm.Requests, llm.Failures, llm.InputTokens, llm.OutputTokens)
		return nil
	},
}
