package clozegen

import (
	"testing"

	"github.com/abhisek/verbo/internal/conjug"
	"github.com/abhisek/verbo/internal/exercise"
)

func testRequest() exercise.GenerateRequest {
	return exercise.GenerateRequest{
		Lemmas: []string{"hablar", "comer"},
		Tense:  conjug.TensePreterite,
		Size:   2,
	}
}

func goodItems() []exercise.Item {
	return []exercise.Item{
		{Type: exercise.ItemFiller, Pre: "En la cocina."},
		{
			Type:    exercise.ItemDialogueLine,
			Speaker: "Ana",
			Pre:     "Ayer ",
			Post:    " con mi madre.",
			Slot:    &exercise.Slot{ID: "s1", Lemma: "hablar", Tense: conjug.TensePreterite, Person: conjug.PersonYo},
		},
		{
			Type: exercise.ItemSentence,
			Pre:  "Tú ",
			Post: " toda la paella.",
			Slot: &exercise.Slot{ID: "s2", Lemma: "comer", Tense: conjug.TensePreterite, Person: conjug.PersonTu},
		},
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}

	if err := v.Validate(goodItems(), testRequest()); err != nil {
		t.Fatalf("valid items rejected: %v", err)
	}

	break1 := goodItems()
	break1[1].Speaker = ""
	break2 := goodItems()
	break2[0].Slot = &exercise.Slot{ID: "x", Lemma: "hablar"}
	break3 := goodItems()
	break3[2].Slot.ID = "s1"
	break4 := goodItems()
	break4[1].Pre = ""
	break5 := goodItems()
	break5[2].Slot.Lemma = ""

	tests := []struct {
		name  string
		items []exercise.Item
	}{
		{"empty payload", nil},
		{"dialogue without speaker", break1},
		{"filler with slot", break2},
		{"duplicate slot id", break3},
		{"empty pre text", break4},
		{"empty lemma", break5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.items, testRequest())
			if err == nil {
				t.Fatal("expected rejection")
			}
			if !err.Retryable {
				t.Error("structural failures should be retryable")
			}
		})
	}
}

func TestSlotCountValidator(t *testing.T) {
	v := &SlotCountValidator{}

	if err := v.Validate(goodItems(), testRequest()); err != nil {
		t.Fatalf("exact count rejected: %v", err)
	}

	req := testRequest()
	req.Size = 3
	if err := v.Validate(goodItems(), req); err == nil {
		t.Error("expected rejection when one blank short")
	}
}

func TestResolvableValidator(t *testing.T) {
	v := &ResolvableValidator{Engine: conjug.NewEngine(nil)}

	if err := v.Validate(goodItems(), testRequest()); err != nil {
		t.Fatalf("valid items rejected: %v", err)
	}

	offList := goodItems()
	offList[1].Slot.Lemma = "vivir"
	if err := v.Validate(offList, testRequest()); err == nil || !err.Retryable {
		t.Errorf("off-list lemma: err = %v, want retryable rejection", err)
	}

	wrongTense := goodItems()
	wrongTense[1].Slot.Tense = conjug.TensePresent
	if err := v.Validate(wrongTense, testRequest()); err == nil || !err.Retryable {
		t.Errorf("wrong tense: err = %v, want retryable rejection", err)
	}

	// A slot the engine itself cannot resolve is not fixable by
	// regenerating.
	unresolvable := goodItems()
	unresolvable[1].Slot.Person = conjug.Person("usted")
	if err := v.Validate(unresolvable, testRequest()); err == nil || err.Retryable {
		t.Errorf("unresolvable slot: err = %v, want non-retryable rejection", err)
	}
}
