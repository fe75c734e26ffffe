package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/verbo/internal/clozegen"
	"github.com/abhisek/verbo/internal/conjug"
	"github.com/abhisek/verbo/internal/exercise"
	"github.com/abhisek/verbo/internal/llm"
	"github.com/abhisek/verbo/internal/tui"
	"github.com/abhisek/verbo/internal/verbpack"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	playCmd.Flags().String("tense", "", "Tense to drill: preterite or present (saved as the new default)")
	playCmd.Flags().Int("size", 0, "Number of blanks: 10, 15 or 20 (saved as the new default)")
	playCmd.Flags().String("verbs", "", "Comma-separated infinitives to drill (saved as the new default)")
	playCmd.Flags().String("pack", "", "Path to a JSON irregular-verb pack (replaces the built-in one)")
	playCmd.Flags().Bool("offline", false, "Use a canned offline generator instead of an LLM provider")
}

func runPlay(cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	settings, err := st.Settings().Load(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if t, _ := cmd.Flags().GetString("tense"); t != "" {
		settings.Exercise.Tense = t
	}
	if n, _ := cmd.Flags().GetInt("size"); n != 0 {
		settings.Exercise.Size = n
	}
	if v, _ := cmd.Flags().GetString("verbs"); v != "" {
		settings.Exercise.Lemmas = splitCSV(v)
	}
	if err := st.Settings().Save(ctx, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	// Re-load so the session sees the clamped values.
	settings, err = st.Settings().Load(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	pack := verbpack.Spanish()
	if p, _ := cmd.Flags().GetString("pack"); p != "" {
		f, err := os.Open(p)
		if err != nil {
			return fmt.Errorf("open verb pack: %w", err)
		}
		pack, err = verbpack.Load(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("load verb pack: %w", err)
		}
	}
	engine := conjug.NewEngine(pack)

	tense := conjug.Tense(settings.Exercise.Tense)
	lemmas, err := drillLemmas(pack, tense, settings.Exercise.Lemmas)
	if err != nil {
		return err
	}

	req := exercise.GenerateRequest{
		Lemmas: lemmas,
		Tense:  tense,
		Size:   settings.Exercise.Size,
	}

	// Non-verb vocabulary flavors the surrounding text.
	if vocab, err := st.Vocab().ListByPOS(ctx, "noun", "adj", "phrase"); err == nil {
		for _, v := range vocab {
			req.Vocab = append(req.Vocab, v.Lemma)
		}
	}

	var provider llm.Provider
	if offline, _ := cmd.Flags().GetBool("offline"); offline {
		provider = offlineProvider(req)
	} else {
		provider, err = llm.NewProviderFromEnv(ctx, st.Events())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Set an API key or pass --offline for canned exercises.")
			return err
		}
	}

	gen := clozegen.New(provider, clozegen.DefaultConfig(engine))
	coord := exercise.NewCoordinator(engine, gen)

	return tui.Run(tui.Options{
		Coordinator: coord,
		Request:     req,
		Progress:    st.Progress(),
	})
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// drillLemmas resolves the verbs to drill. When the learner has not
// chosen any, a starter set is drawn from the pack for the tense. An
// empty result is an error: a custom pack may cover nothing for the
// tense, and the generator cannot fill blanks from no verbs at all.
func drillLemmas(pack conjug.Pack, tense conjug.Tense, chosen []string) ([]string, error) {
	lemmas := chosen
	if len(lemmas) == 0 {
		lemmas = verbpack.Lemmas(pack, tense)
		if len(lemmas) > 6 {
			lemmas = lemmas[:6]
		}
	}
	if len(lemmas) == 0 {
		return nil, fmt.Errorf("no verbs cover the %s tense in this pack; pick some with --verbs", tense)
	}
	return lemmas, nil
}

// offlineProvider returns canned, deterministic exercise payloads so the
// app stays usable without any API key.
func offlineProvider(req exercise.GenerateRequest) llm.Provider {
	items := make([]exercise.Item, 0, req.Size)
	for i := 0; i < req.Size; i++ {
		lemma := req.Lemmas[i%len(req.Lemmas)]
		person := conjug.Persons[i%len(conjug.Persons)]
		items = append(items, exercise.Item{
			Type: exercise.ItemSentence,
			Pre:  fmt.Sprintf("(%s, %s) ", lemma, person),
			Post: ".",
			Slot: &exercise.Slot{
				ID:     fmt.Sprintf("s%d", i+1),
				Lemma:  lemma,
				Tense:  req.Tense,
				Person: person,
			},
		})
	}

	raw, _ := json.Marshal(clozegen.Payload{Items: items})
	return llm.NewMockProvider(llm.MockResponse{Content: raw})
}
