package release

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// Variant marks a special subtitle track
type Variant string

const (
	Forced Variant = "forced"
	SDH    Variant = "sdh"
	CC     Variant = "cc"
)

// SubtitleTag is the language and variants detected for a subtitle file
type SubtitleTag struct {
	Language language.Tag
	Variants []Variant
}

// String renders the tag as "lang" or "lang.variant1.variant2"
func (t SubtitleTag) String() string {
	parts := make([]string, 0, len(t.Variants)+1)
	parts = append(parts, t.Language.String())
	for _, v := range t.Variants {
		parts = append(parts, string(v))
	}
	return strings.Join(parts, ".")
}

type languageHint struct {
	tag   language.Tag
	regex *regexp.Regexp
}

// languageHints are checked in order, the first match wins
var languageHints = []languageHint{
	{tag: language.Hindi, regex: hintRegex("hi", "hin", "hindi")},
	{tag: language.Japanese, regex: hintRegex("ja", "jpn", "japanese")},
	{tag: language.French, regex: hintRegex("fr", "fre", "fra", "french")},
	{tag: language.Spanish, regex: hintRegex("es", "spa", "spanish")},
}

func hintRegex(tokens ...string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^a-z0-9])(?:` + strings.Join(tokens, "|") + `)(?:[^a-z0-9]|$)`)
}

// DetectSubtitleTag derives the language and variants of a subtitle from its filename.
// Variants are always ordered forced, sdh, cc no matter where they appear in the name.
func DetectSubtitleTag(name string) SubtitleTag {
	lower := strings.ToLower(name)

	tag := SubtitleTag{Language: language.English}
	if strings.Contains(lower, "forced") {
		tag.Variants = append(tag.Variants, Forced)
	}
	if strings.Contains(lower, "sdh") {
		tag.Variants = append(tag.Variants, SDH)
	}
	if strings.Contains(lower, "cc") || strings.Contains(lower, "closed") {
		tag.Variants = append(tag.Variants, CC)
	}

	for _, hint := range languageHints {
		if hint.regex.MatchString(lower) {
			tag.Language = hint.tag
			break
		}
	}

	return tag
}

// DetectSubTag returns the rendered subtitle tag for a filename
func DetectSubTag(name string) string {
	return DetectSubtitleTag(name).String()
}
