package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/verbo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "verbo",
	Short: "Spanish verb drills in the terminal",
	Long:  "Verbo — terminal app for practicing Spanish verb conjugation with AI-generated cloze exercises.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VERBO_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(conjugateCmd)
	rootCmd.AddCommand(verbsCmd)
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then VERBO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
