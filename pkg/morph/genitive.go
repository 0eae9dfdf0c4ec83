// Package morph inflects Russian personal names into the genitive case using
// ordered suffix rewriting. It is a best-effort heuristic over common surname
// endings, not a full morphological grammar: a surname no rule recognises is
// returned unchanged rather than rejected.
package morph

import "strings"

// rule rewrites a surname when one of its suffixes matches and none of the
// exclusions do. strip counts runes removed from the end before the genitive
// ending is appended.
type rule struct {
	name     string
	suffixes []string
	excludes []string
	strip    int
	ending   string
}

func (r rule) matches(surname string) bool {
	for _, excluded := range r.excludes {
		if strings.HasSuffix(surname, excluded) {
			return false
		}
	}
	for _, suffix := range r.suffixes {
		if strings.HasSuffix(surname, suffix) {
			return true
		}
	}
	return false
}

func (r rule) apply(surname string) string {
	runes := []rune(surname)
	if r.strip > len(runes) {
		return surname
	}
	return string(runes[:len(runes)-r.strip]) + r.ending
}

// genitiveRules is evaluated top to bottom, first match wins. Order matters:
// the suffix sets overlap (-ая is caught before the generic -я rule, -ова
// before the generic -а rule), so reordering changes the outcome.
var genitiveRules = []rule{
	{name: "feminine -ова/-ева/-ина", suffixes: []string{"ова", "ева", "ина"}, strip: 1, ending: "ой"},
	{name: "feminine -ая", suffixes: []string{"ая"}, strip: 2, ending: "ой"},
	{name: "feminine -а", suffixes: []string{"а"}, excludes: []string{"ска", "цка"}, strip: 1, ending: "ой"},
	{name: "feminine -я", suffixes: []string{"я"}, excludes: []string{"ая"}, strip: 1, ending: "и"},
	{name: "masculine -ов/-ев", suffixes: []string{"ов", "ев"}, ending: "а"},
	{name: "masculine -ин", suffixes: []string{"ин"}, excludes: []string{"шин", "чин"}, ending: "а"},
	{name: "masculine -ский/-цкий", suffixes: []string{"ский", "цкий"}, strip: 2, ending: "ого"},
	{name: "masculine -ой", suffixes: []string{"ой"}, strip: 2, ending: "ого"},
	{name: "masculine -ый/-ий", suffixes: []string{"ый", "ий"}, strip: 2, ending: "ого"},
	{name: "soft sign", suffixes: []string{"ь"}, strip: 1, ending: "я"},
	{
		name: "trailing consonant",
		suffixes: []string{
			"б", "в", "г", "д", "ж", "з", "к", "л", "м", "н",
			"п", "р", "с", "т", "ф", "х", "ц", "ч", "ш", "щ",
		},
		ending: "а",
	},
}

// Genitive converts a "Surname Initials" string into the genitive case. Only
// the surname (first whitespace-separated token) is inflected; initials pass
// through untouched. Empty input yields an empty string.
func Genitive(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}

	parts := strings.Fields(trimmed)
	surname := genitiveSurname(parts[0])
	if len(parts) == 1 {
		return surname
	}
	return surname + " " + strings.Join(parts[1:], " ")
}

func genitiveSurname(surname string) string {
	for _, r := range genitiveRules {
		if r.matches(surname) {
			return r.apply(surname)
		}
	}
	return surname
}
