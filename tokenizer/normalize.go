package tokenizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes compatibility forms (ﬁ, ², fullwidth letters) and
// drops the combining marks left behind by accented letters.
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// latinFolds covers Latin letters that have no decomposition.
var latinFolds = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"þ", "th", "Þ", "TH",
	"ħ", "h", "Ħ", "H",
	"ŧ", "t", "Ŧ", "T",
	"ƀ", "b", "Ƀ", "B",
	"ƒ", "f", "Ƒ", "F",
	"ɨ", "i", "Ɨ", "I",
	"ɉ", "j", "Ɉ", "J",
	"ƶ", "z", "Ƶ", "Z",
	"ı", "i",
)

// Fold maps text onto the Latin alphabet:
// - Decomposes compatibility and accented characters (é -> e, ﬁ -> fi)
// - Expands letters that do not decompose (ß -> ss, æ -> ae, ø -> o)
// Characters outside the Latin alphabet are returned unchanged and act as
// separators during tokenization.
func Fold(text string) string {
	if text == "" {
		return ""
	}

	folded, _, err := transform.String(stripMarks, text)
	if err != nil {
		// Only reachable on invalid transformer state; keep the raw text
		folded = text
	}

	return latinFolds.Replace(folded)
}
