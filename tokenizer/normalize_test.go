package tokenizer

import (
	"testing"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ascii unchanged", "Eiffel Tower", "Eiffel Tower"},
		{"acute accent", "Café Olé", "Cafe Ole"},
		{"umlaut", "Zürich Münster", "Zurich Munster"},
		{"sharp s", "Straße", "Strasse"},
		{"capital sharp s", "STRAẞE", "STRASSE"},
		{"ligatures", "Æsir Œuvre", "AEsir OEuvre"},
		{"stroked letters", "Øresund Łódź", "Oresund Lodz"},
		{"bar and stroke letters", "Ħamrun Ŧest ƀ Ƒ ɨ Ɨ ƶ Ƶ", "Hamrun Test b F i I z Z"},
		{"compatibility ligature", "ﬁsh", "fish"},
		{"superscript digit", "H²O", "H2O"},
		{"fullwidth", "ＡＢＣ", "ABC"},
		{"non-latin kept", "Москва", "Москва"},
		{"empty string", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Fold(tc.input)
			if got != tc.expected {
				t.Errorf("Fold(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}
