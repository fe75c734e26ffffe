package conjug

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hablé", "hable"},
		{"HABLÉ", "hable"},
		{"  hablé  ", "hable"},
		{"comió", "comio"},
		{"MAÑANA", "mañana"},
		{"señor  García", "señor garcia"},
		{"fui", "fui"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"hablé", "MAÑANA", "  señor García  ", "empecé"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalize_DecomposedEnye(t *testing.T) {
	// n followed by a combining tilde must survive as ñ.
	if got := Normalize("mañana"); got != "mañana" {
		t.Errorf("Normalize(decomposed) = %q, want %q", got, "mañana")
	}
}

func TestAnswersEqualTolerant(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"hable", "hablé", true},
		{"HABLE", "hablé", true},
		{" hablé ", "hablé", true},
		{"comio", "comió", true},
		{"hablo", "hablé", false},
		// ñ is a distinct letter, not an accented n.
		{"manana", "mañana", false},
		{"MAÑANA", "mañana", true},
	}

	for _, tt := range tests {
		if got := AnswersEqualTolerant(tt.a, tt.b); got != tt.want {
			t.Errorf("AnswersEqualTolerant(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
