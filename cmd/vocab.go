package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/verbo/internal/store"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Manage your vocabulary list",
}

var vocabAddCmd = &cobra.Command{
	Use:   "add <lemma> <translation>",
	Short: "Add a vocabulary entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		pos, _ := cmd.Flags().GetString("pos")
		tags, _ := cmd.Flags().GetString("tags")

		item, err := st.Vocab().Add(cmd.Context(), store.VocabItem{
			Lemma:       args[0],
			Translation: args[1],
			POS:         pos,
			Tags:        splitCSV(tags),
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", item.Lemma, item.ID)
		return nil
	},
}

var vocabListCmd = &cobra.Command{
	Use:   "list",
	Short: "List vocabulary entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		items, err := st.Vocab().List(cmd.Context())
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No vocabulary saved yet. Try: verbo vocab add gato cat --pos noun")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tLEMMA\tTRANSLATION\tPOS\tTAGS")
		for _, it := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				it.ID, it.Lemma, it.Translation, it.POS, strings.Join(it.Tags, ","))
		}
		return w.Flush()
	},
}

var vocabRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a vocabulary entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.Vocab().Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "deleted", args[0])
		return nil
	},
}

func init() {
	vocabAddCmd.Flags().String("pos", "other", "Part of speech: verb, noun, adj, phrase, other")
	vocabAddCmd.Flags().String("tags", "", "Comma-separated tags")

	vocabCmd.AddCommand(vocabAddCmd)
	vocabCmd.AddCommand(vocabListCmd)
	vocabCmd.AddCommand(vocabRmCmd)
}
