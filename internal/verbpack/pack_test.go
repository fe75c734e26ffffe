package verbpack

import (
	"strings"
	"testing"

	"github.com/abhisek/verbo/internal/conjug"
)

func TestLoad_Valid(t *testing.T) {
	src := `{
		"ser": {
			"preterite": {
				"yo": "fui", "tu": "fuiste", "el": "fue",
				"nosotros": "fuimos", "vosotros": "fuisteis", "ellos": "fueron"
			}
		}
	}`

	pack, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := pack["ser"][conjug.TensePreterite][conjug.PersonEl]; got != "fue" {
		t.Errorf("pack[ser][preterite][el] = %q, want %q", got, "fue")
	}
}

func TestLoad_Rejections(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"not json", `{`},
		{"unknown tense", `{"ser": {"future": {"yo": "seré"}}}`},
		{"unknown person", `{"ser": {"preterite": {"usted": "fue"}}}`},
		{"missing person", `{"ser": {"preterite": {"yo": "fui"}}}`},
		{"empty form", `{"ser": {"preterite": {
			"yo": "", "tu": "fuiste", "el": "fue",
			"nosotros": "fuimos", "vosotros": "fuisteis", "ellos": "fueron"
		}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tt.src)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSpanish_FullParadigms(t *testing.T) {
	pack := Spanish()
	if len(pack) != 15 {
		t.Fatalf("Spanish pack has %d lemmas, want 15", len(pack))
	}

	for lemma, byTense := range pack {
		for _, tense := range []conjug.Tense{conjug.TensePresent, conjug.TensePreterite} {
			forms, ok := byTense[tense]
			if !ok {
				t.Errorf("%s: missing %s paradigm", lemma, tense)
				continue
			}
			for _, p := range conjug.Persons {
				if forms[p] == "" {
					t.Errorf("%s/%s: empty %s form", lemma, tense, p)
				}
			}
		}
	}
}

func TestSpanish_SpotChecks(t *testing.T) {
	engine := conjug.NewEngine(Spanish())

	tests := []struct {
		lemma  string
		tense  conjug.Tense
		person conjug.Person
		want   string
	}{
		{"ser", conjug.TensePreterite, conjug.PersonYo, "fui"},
		{"ir", conjug.TensePreterite, conjug.PersonEllos, "fueron"},
		{"tener", conjug.TensePreterite, conjug.PersonEl, "tuvo"},
		{"hacer", conjug.TensePreterite, conjug.PersonEl, "hizo"},
		{"decir", conjug.TensePreterite, conjug.PersonEllos, "dijeron"},
		{"estar", conjug.TensePreterite, conjug.PersonNosotros, "estuvimos"},
		{"llegar", conjug.TensePreterite, conjug.PersonYo, "llegué"},
		{"ser", conjug.TensePresent, conjug.PersonYo, "soy"},
		{"tener", conjug.TensePresent, conjug.PersonVosotros, "tenéis"},
		{"ver", conjug.TensePresent, conjug.PersonEl, "ve"},
	}

	for _, tt := range tests {
		got, err := engine.Conjugate(tt.lemma, tt.tense, tt.person)
		if err != nil {
			t.Errorf("Conjugate(%q, %s, %s): %v", tt.lemma, tt.tense, tt.person, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Conjugate(%q, %s, %s) = %q, want %q", tt.lemma, tt.tense, tt.person, got, tt.want)
		}
	}
}

func TestLemmas(t *testing.T) {
	pack := Spanish()

	pret := Lemmas(pack, conjug.TensePreterite)
	if len(pret) != 15 {
		t.Errorf("preterite lemmas = %d, want 15", len(pret))
	}
	for i := 1; i < len(pret); i++ {
		if pret[i-1] >= pret[i] {
			t.Fatalf("lemmas not sorted: %q before %q", pret[i-1], pret[i])
		}
	}
}
