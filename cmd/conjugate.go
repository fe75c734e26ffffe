package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/verbo/internal/conjug"
	"github.com/abhisek/verbo/internal/verbpack"
)

var conjugateCmd = &cobra.Command{
	Use:   "conjugate <infinitive> <tense> [person]",
	Short: "Print conjugated forms for a verb",
	Long: `Print the conjugation of an infinitive in the given tense.
With a person (yo, tu, el, nosotros, vosotros, ellos) prints that single
form; without one prints the full table.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := conjug.NewEngine(verbpack.Spanish())
		lemma := args[0]
		tense := conjug.Tense(args[1])

		if len(args) == 3 {
			form, err := engine.Conjugate(lemma, tense, conjug.Person(args[2]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), form)
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, p := range conjug.Persons {
			form, err := engine.Conjugate(lemma, tense, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\n", p, form)
		}
		return w.Flush()
	},
}
