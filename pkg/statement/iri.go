package statement

import (
	"strings"
	"unicode"
)

// DefaultPrefix is prepended to bare labels that carry no namespace of their
// own.
const DefaultPrefix = "mhdb"

// IsFullIRI reports whether the identifier is already a full IRI rather than
// a compact prefix:local form.
func IsFullIRI(s string) bool {
	return strings.Contains(s, "://")
}

// IsLiteral reports whether the value is a quoted Turtle literal.
func IsLiteral(s string) bool {
	return strings.HasPrefix(s, `"`)
}

// Label reduces a free-text string to an identifier-safe local name: spaces
// become underscores and everything outside [alphanumeric - . _] is removed.
func Label(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "_-_", "-")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.' || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PascalLabel is Label with each word capitalized and the separators dropped,
// used for class-style identifiers built from multi-word cells.
func PascalLabel(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return Label(strings.Join(words, ""))
}

// CheckIRI normalizes an identifier the way the spreadsheets expect:
// full IRIs are wrapped in angle brackets, compact prefix:local identifiers
// and literals pass through, and anything else becomes a label under the
// default namespace. A trailing colon is stripped before classification.
func CheckIRI(iri string) string {
	iri = strings.TrimSpace(iri)
	if IsLiteral(iri) {
		return iri
	}
	if strings.HasSuffix(iri, ":") {
		iri = strings.TrimSuffix(iri, ":")
	}
	if IsFullIRI(iri) {
		return "<" + iri + ">"
	}
	if idx := strings.Index(iri, ":"); idx >= 0 && !strings.Contains(iri, ": ") {
		return iri
	}
	return DefaultPrefix + ":" + Label(iri)
}

// CheckPascalIRI is CheckIRI with the fallback label capitalized per word,
// used for class-style identifiers built from multi-word cells.
func CheckPascalIRI(iri string) string {
	iri = strings.TrimSpace(iri)
	if IsLiteral(iri) {
		return iri
	}
	iri = strings.TrimSuffix(iri, ":")
	if IsFullIRI(iri) {
		return "<" + iri + ">"
	}
	if idx := strings.Index(iri, ":"); idx >= 0 && !strings.Contains(iri, ": ") {
		return iri
	}
	return DefaultPrefix + ":" + PascalLabel(iri)
}

// LanguageString encodes a literal as a triple-quoted, language-tagged
// Turtle string. Double quotes inside the text are softened to single quotes
// so the literal stays well formed.
func LanguageString(s, lang string) string {
	if lang == "" {
		lang = "en"
	}
	s = strings.ReplaceAll(s, `"`, "'")
	s = strings.TrimSpace(s)
	return `"""` + s + `"""@` + lang
}

// CompactPrefix returns the namespace prefix of a compact identifier and true,
// or "" and false when the value is a full IRI, a literal, or carries no
// prefix at all.
func CompactPrefix(s string) (string, bool) {
	if IsFullIRI(s) || IsLiteral(s) {
		return "", false
	}
	idx := strings.Index(s, ":")
	if idx <= 0 {
		return "", false
	}
	return s[:idx], true
}
