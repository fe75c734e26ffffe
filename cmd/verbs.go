package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/verbo/internal/conjug"
	"github.com/abhisek/verbo/internal/verbpack"
)

var verbsCmd = &cobra.Command{
	Use:   "verbs [tense]",
	Short: "List verbs with irregular coverage",
	Long: `List the infinitives the built-in irregular pack covers. With a tense
argument only verbs covered in that tense are shown; the preterite also
works for any regular -ar/-er/-ir infinitive outside this list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pack := verbpack.Spanish()

		tenses := []conjug.Tense{conjug.TensePreterite, conjug.TensePresent}
		if len(args) == 1 {
			t := conjug.Tense(args[0])
			if !t.Valid() {
				return fmt.Errorf("unknown tense %q (want preterite or present)", args[0])
			}
			tenses = []conjug.Tense{t}
		}

		for _, t := range tenses {
			fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", t)
			for _, lemma := range verbpack.Lemmas(pack, t) {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", lemma)
			}
		}
		return nil
	},
}
