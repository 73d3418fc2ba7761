// Package text implements the text tools: case conversions and simple
// counts over a block of text.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"calcbox/internal/calc/calcerr"
)

// Mode is a text transformation.
type Mode string

const (
	Upper    Mode = "upper"
	Lower    Mode = "lower"
	Title    Mode = "title"
	Sentence Mode = "sentence"
	Reverse  Mode = "reverse"
	Slug     Mode = "slug"
	Camel    Mode = "camel"
	Snake    Mode = "snake"
)

// Modes lists every transformation in display order.
var Modes = []Mode{Upper, Lower, Title, Sentence, Reverse, Slug, Camel, Snake}

// Transform applies mode to s.
func Transform(mode Mode, s string) (string, error) {
	if s == "" {
		return "", calcerr.Missing("text is required")
	}
	switch mode {
	case Upper:
		return cases.Upper(language.English).String(s), nil
	case Lower:
		return cases.Lower(language.English).String(s), nil
	case Title:
		return cases.Title(language.English).String(s), nil
	case Sentence:
		return sentenceCase(s), nil
	case Reverse:
		r := []rune(s)
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
		return string(r), nil
	case Slug, Snake, Camel:
		return joinWords(mode, s)
	}
	return "", calcerr.OutOfDomain("unknown text mode %q", mode)
}

// joinWords builds the identifier-style modes. Input with no letters or
// digits has no words to join and is treated as absent.
func joinWords(mode Mode, s string) (string, error) {
	ws := words(s)
	if len(ws) == 0 {
		return "", calcerr.Missing("text has no letters or digits")
	}
	switch mode {
	case Slug:
		return strings.Join(words(cases.Lower(language.English).String(s)), "-"), nil
	case Snake:
		return strings.Join(words(cases.Lower(language.English).String(s)), "_"), nil
	default:
		lower, title := cases.Lower(language.English), cases.Title(language.English)
		for i, w := range ws {
			if i == 0 {
				ws[i] = lower.String(w)
			} else {
				ws[i] = title.String(w)
			}
		}
		return strings.Join(ws, ""), nil
	}
}

// Stats counts characters, words, lines and sentences.
type Stats struct {
	Characters        int `json:"characters"`
	CharactersNoSpace int `json:"characters_no_space"`
	Words             int `json:"words"`
	Lines             int `json:"lines"`
	Sentences         int `json:"sentences"`
}

// Analyze counts s. Characters are runes; sentences end at '.', '!' or '?'.
func Analyze(s string) Stats {
	st := Stats{Words: len(strings.Fields(s))}
	if s != "" {
		st.Lines = strings.Count(s, "\n") + 1
	}
	inSentence := false
	for _, r := range s {
		st.Characters++
		if !unicode.IsSpace(r) {
			st.CharactersNoSpace++
		}
		switch {
		case r == '.' || r == '!' || r == '?':
			if inSentence {
				st.Sentences++
			}
			inSentence = false
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			inSentence = true
		}
	}
	if inSentence {
		st.Sentences++
	}
	return st
}

// words splits on anything that is not a letter or digit.
func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func sentenceCase(s string) string {
	lower := []rune(cases.Lower(language.English).String(s))
	start := true
	for i, r := range lower {
		switch {
		case start && unicode.IsLetter(r):
			lower[i] = unicode.ToUpper(r)
			start = false
		case r == '.' || r == '!' || r == '?':
			start = true
		}
	}
	return string(lower)
}
