package sidc

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonWord = regexp.MustCompile(`\W+`)

// Normalize converts a human or LLM supplied label into the canonical table
// key: diacritics folded, runs of non-word characters collapsed to a single
// underscore, leading and trailing underscores stripped, upper-cased.
//
//	Normalize("Land Unit")        == "LAND_UNIT"
//	Normalize(" Task  Force ")    == "TASK_FORCE"
//	Normalize("Army Group/Front") == "ARMY_GROUP_FRONT"
//
// Empty input yields "". Normalize is idempotent.
func Normalize(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return ""
	}
	label = foldDiacritics(label)
	label = nonWord.ReplaceAllString(label, "_")
	label = strings.Trim(label, "_")
	return strings.ToUpper(label)
}

// foldDiacritics strips combining marks after compatibility decomposition so
// "Réconnaissance" matches RECONNAISSANCE.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// acronyms stay upper-case when a key is rendered for display.
var acronyms = map[string]bool{
	"CBRN":   true,
	"SIGINT": true,
	"HQ":     true,
}

// TitleCase renders a normalized key as a display name:
//
//	TitleCase("ANTITANK_ANTIARMOUR") == "Antitank Antiarmour"
//	TitleCase("CBRN")                == "CBRN"
func TitleCase(key string) string {
	words := strings.FieldsFunc(key, func(r rune) bool { return r == '_' || unicode.IsSpace(r) })
	caser := cases.Title(language.English)
	for i, w := range words {
		if acronyms[strings.ToUpper(w)] {
			words[i] = strings.ToUpper(w)
			continue
		}
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}
