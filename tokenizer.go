package overmark

import "strings"

// markerLead introduces every marker; a doubled lead escapes a literal one.
const markerLead = '{'

// maxSpanIDLen bounds the lookahead when probing a marker candidate.
const maxSpanIDLen = 128

// Tokenize lexes src into a flat token stream in one left-to-right pass.
// Marker-like text that does not parse as a complete marker passes through
// as literal content; Tokenize never fails. Structural validity of the
// marker pairs is the region builder's concern, not the tokenizer's.
//
// Text tokens are substrings of src. An escaped lead ("{{") splits the
// surrounding run into adjacent text tokens so that no copying occurs.
func Tokenize(src string) []Token {
	toks := make([]Token, 0, 2*strings.Count(src, "{")+1)
	start := 0
	i := 0
	for i < len(src) {
		if src[i] != markerLead {
			i++
			continue
		}
		if i+1 < len(src) && src[i+1] == markerLead {
			toks = append(toks, Token{Text: src[start : i+1], Kind: tokenText, Offset: start})
			i += 2
			start = i
			continue
		}
		id, kind, end, ok := parseMarker(src, i)
		if !ok {
			i++
			continue
		}
		if i > start {
			toks = append(toks, Token{Text: src[start:i], Kind: tokenText, Offset: start})
		}
		toks = append(toks, Token{ID: id, Kind: kind, Offset: i})
		i = end
		start = i
	}
	if start < len(src) {
		toks = append(toks, Token{Text: src[start:], Kind: tokenText, Offset: start})
	}
	return toks
}

// parseMarker probes a marker candidate at src[at] (which is a lead byte).
// It returns the id, the token kind and the offset just past the closing
// brace. ok is false when the candidate is not a well-formed marker.
func parseMarker(src string, at int) (SpanID, tokenKind, int, bool) {
	j := at + 1
	if j >= len(src) {
		return "", 0, 0, false
	}
	var kind tokenKind
	switch src[j] {
	case '>':
		kind = tokenSpanStart
	case '<':
		kind = tokenSpanEnd
	case '^':
		kind = tokenAnnotationRef
	default:
		return "", 0, 0, false
	}
	j++
	idStart := j
	for j < len(src) && j-idStart <= maxSpanIDLen && isSpanIDByte(src[j]) {
		j++
	}
	if j == idStart || j >= len(src) || src[j] != '}' {
		return "", 0, 0, false
	}
	return SpanID(src[idStart:j]), kind, j + 1, true
}

func isSpanIDByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '-', c == '.', c == ':':
		return true
	}
	return false
}

// StripMarkers returns src with all markers removed and escapes decoded.
// This is the text structural boundary locators run over; the texts of the
// regions built from src concatenate to exactly this string.
func StripMarkers(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	for _, t := range Tokenize(src) {
		if t.Kind == tokenText {
			b.WriteString(t.Text)
		}
	}
	return b.String()
}
