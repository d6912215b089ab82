package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases title, collapses every run of characters outside
// [a-z0-9] into a single hyphen and trims one leading and one trailing hyphen.
// Accented letters count as outside the set: "Développement Web!!" becomes
// "d-veloppement-web".
func Slugify(title string) string {
	s := nonSlugRun.ReplaceAllString(strings.ToLower(title), "-")
	s = strings.TrimPrefix(s, "-")
	return strings.TrimSuffix(s, "-")
}

// StripDiacritics decomposes s and drops combining marks ("é" -> "e").
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Slugger derives slugs, optionally transliterating accented letters first.
type Slugger struct {
	Transliterate bool
}

func (s Slugger) Slug(title string) string {
	if s.Transliterate {
		title = StripDiacritics(title)
	}
	return Slugify(title)
}

// SplitTechnologies parses a comma-separated list: tokens are trimmed, empty
// tokens dropped, order and duplicates kept.
func SplitTechnologies(raw string) []string {
	out := []string{}
	for _, tok := range strings.Split(raw, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

func JoinTechnologies(techs []string) string {
	return strings.Join(techs, ", ")
}
