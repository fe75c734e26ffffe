package conjug

import (
	"errors"
	"testing"
)

// testPack covers one fully irregular verb in both tenses and one verb
// that would also classify as a regular -ar infinitive.
func testPack() Pack {
	return Pack{
		"ser": {
			TensePreterite: {
				PersonYo: "fui", PersonTu: "fuiste", PersonEl: "fue",
				PersonNosotros: "fuimos", PersonVosotros: "fuisteis", PersonEllos: "fueron",
			},
			TensePresent: {
				PersonYo: "soy", PersonTu: "eres", PersonEl: "es",
				PersonNosotros: "somos", PersonVosotros: "sois", PersonEllos: "son",
			},
		},
		"estar": {
			TensePreterite: {
				PersonYo: "estuve", PersonTu: "estuviste", PersonEl: "estuvo",
				PersonNosotros: "estuvimos", PersonVosotros: "estuvisteis", PersonEllos: "estuvieron",
			},
		},
	}
}

func TestConjugate_RegularPreterite(t *testing.T) {
	engine := NewEngine(nil)

	tests := []struct {
		lemma  string
		person Person
		want   string
	}{
		{"hablar", PersonYo, "hablé"},
		{"hablar", PersonTu, "hablaste"},
		{"hablar", PersonEl, "habló"},
		{"hablar", PersonNosotros, "hablamos"},
		{"hablar", PersonVosotros, "hablasteis"},
		{"hablar", PersonEllos, "hablaron"},
		{"comer", PersonYo, "comí"},
		{"comer", PersonTu, "comiste"},
		{"comer", PersonEl, "comió"},
		{"comer", PersonNosotros, "comimos"},
		{"comer", PersonVosotros, "comisteis"},
		{"comer", PersonEllos, "comieron"},
		{"vivir", PersonYo, "viví"},
		{"vivir", PersonEl, "vivió"},
		{"vivir", PersonEllos, "vivieron"},
	}

	for _, tt := range tests {
		got, err := engine.Conjugate(tt.lemma, TensePreterite, tt.person)
		if err != nil {
			t.Errorf("Conjugate(%q, preterite, %s): %v", tt.lemma, tt.person, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Conjugate(%q, preterite, %s) = %q, want %q", tt.lemma, tt.person, got, tt.want)
		}
	}
}

func TestConjugate_OrthographicYoForms(t *testing.T) {
	engine := NewEngine(nil)

	tests := []struct {
		lemma  string
		person Person
		want   string
	}{
		{"buscar", PersonYo, "busqué"},
		{"pagar", PersonYo, "pagué"},
		{"empezar", PersonYo, "empecé"},
		{"llegar", PersonYo, "llegué"},
		// Spelling change applies only to the yo form.
		{"buscar", PersonTu, "buscaste"},
		{"pagar", PersonEl, "pagó"},
		{"empezar", PersonEllos, "empezaron"},
	}

	for _, tt := range tests {
		got, err := engine.Conjugate(tt.lemma, TensePreterite, tt.person)
		if err != nil {
			t.Errorf("Conjugate(%q, preterite, %s): %v", tt.lemma, tt.person, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Conjugate(%q, preterite, %s) = %q, want %q", tt.lemma, tt.person, got, tt.want)
		}
	}
}

func TestConjugate_PackOverridesRegularRules(t *testing.T) {
	engine := NewEngine(testPack())

	// "estar" would conjugate as a regular -ar verb ("estó") without the
	// pack; the pack entry must win for every person.
	got, err := engine.Conjugate("estar", TensePreterite, PersonEl)
	if err != nil {
		t.Fatalf("Conjugate(estar): %v", err)
	}
	if got != "estuvo" {
		t.Errorf("Conjugate(estar, preterite, el) = %q, want %q", got, "estuvo")
	}

	got, err = engine.Conjugate("ser", TensePreterite, PersonYo)
	if err != nil {
		t.Fatalf("Conjugate(ser): %v", err)
	}
	if got != "fui" {
		t.Errorf("Conjugate(ser, preterite, yo) = %q, want %q", got, "fui")
	}
}

func TestConjugate_InputIsTrimmedAndLowercased(t *testing.T) {
	engine := NewEngine(testPack())

	got, err := engine.Conjugate("  SER ", TensePreterite, PersonEl)
	if err != nil {
		t.Fatalf("Conjugate: %v", err)
	}
	if got != "fue" {
		t.Errorf("Conjugate(\"  SER \") = %q, want %q", got, "fue")
	}
}

func TestConjugate_PresentIsPackOnly(t *testing.T) {
	engine := NewEngine(testPack())

	got, err := engine.Conjugate("ser", TensePresent, PersonYo)
	if err != nil {
		t.Fatalf("Conjugate(ser, present, yo): %v", err)
	}
	if got != "soy" {
		t.Errorf("Conjugate(ser, present, yo) = %q, want %q", got, "soy")
	}

	// A perfectly regular verb still fails in the present without a
	// pack entry.
	_, err = engine.Conjugate("hablar", TensePresent, PersonYo)
	var infErr *InvalidInfinitiveError
	if !errors.As(err, &infErr) {
		t.Fatalf("Conjugate(hablar, present, yo) err = %v, want InvalidInfinitiveError", err)
	}
	if infErr.Tense != TensePresent {
		t.Errorf("InvalidInfinitiveError.Tense = %q, want present", infErr.Tense)
	}

	// "estar" has a preterite pack entry but no present one.
	_, err = engine.Conjugate("estar", TensePresent, PersonTu)
	if !errors.As(err, &infErr) {
		t.Errorf("Conjugate(estar, present, tu) err = %v, want InvalidInfinitiveError", err)
	}
}

func TestConjugate_PackWithPersonGap(t *testing.T) {
	// A hand-built pack can cover a tense without all six persons; the
	// gap must error, never come back as an empty "form".
	engine := NewEngine(Pack{
		"ir": {
			TensePreterite: {
				PersonYo: "fui", PersonTu: "fuiste", PersonEl: "fue",
			},
		},
	})

	got, err := engine.Conjugate("ir", TensePreterite, PersonYo)
	if err != nil {
		t.Fatalf("Conjugate(ir, preterite, yo): %v", err)
	}
	if got != "fui" {
		t.Errorf("Conjugate(ir, preterite, yo) = %q, want %q", got, "fui")
	}

	for _, person := range []Person{PersonNosotros, PersonVosotros, PersonEllos} {
		_, err := engine.Conjugate("ir", TensePreterite, person)
		var infErr *InvalidInfinitiveError
		if !errors.As(err, &infErr) {
			t.Errorf("Conjugate(ir, preterite, %s) err = %v, want InvalidInfinitiveError", person, err)
		}
	}
}

func TestConjugate_ErrorTaxonomy(t *testing.T) {
	engine := NewEngine(nil)

	_, err := engine.Conjugate("hablar", Tense("future"), PersonYo)
	var tenseErr *UnsupportedTenseError
	if !errors.As(err, &tenseErr) {
		t.Errorf("unknown tense err = %v, want UnsupportedTenseError", err)
	}

	_, err = engine.Conjugate("hablar", TensePreterite, Person("usted"))
	var personErr *UnsupportedPersonError
	if !errors.As(err, &personErr) {
		t.Errorf("unknown person err = %v, want UnsupportedPersonError", err)
	}

	_, err = engine.Conjugate("gato", TensePreterite, PersonYo)
	var infErr *InvalidInfinitiveError
	if !errors.As(err, &infErr) {
		t.Errorf("non-infinitive err = %v, want InvalidInfinitiveError", err)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		lemma string
		want  VerbClass
		ok    bool
	}{
		{"hablar", ClassAr, true},
		{"comer", ClassEr, true},
		{"vivir", ClassIr, true},
		{"HABLAR", ClassAr, true},
		{"gato", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := Classify(tt.lemma)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Classify(%q) = (%q, %v), want (%q, %v)", tt.lemma, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResolvable(t *testing.T) {
	engine := NewEngine(testPack())

	if !engine.Resolvable("hablar", TensePreterite, PersonYo) {
		t.Error("expected hablar/preterite/yo to be resolvable")
	}
	if engine.Resolvable("hablar", TensePresent, PersonYo) {
		t.Error("expected hablar/present/yo to be unresolvable without a pack entry")
	}
}
