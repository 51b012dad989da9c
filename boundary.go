package overmark

import "strings"

// BoundaryKind classifies a structural boundary.
type BoundaryKind uint8

const (
	// BoundaryParagraph is a blank-line block break.
	BoundaryParagraph BoundaryKind = iota
	// BoundaryHeading introduces an ATX heading.
	BoundaryHeading
	// BoundaryListItem introduces a bullet or ordered list item.
	BoundaryListItem
	// BoundaryFence crosses a fenced code block delimiter.
	BoundaryFence
	// BoundaryRule crosses a thematic break.
	BoundaryRule
	// BoundaryLine is a hard line break.
	BoundaryLine
)

// Boundary marks a structural break in marker-stripped text. Offset is
// where the previous block's inline content ends and the separator begins;
// Resume is where inline content continues. The separator bytes in between
// (newlines, blank lines, block syntax such as heading or list markers)
// must not be wrapped in inline markup, so the generator closes every open
// construct at Offset and reopens surviving spans at Resume.
type Boundary struct {
	Offset int
	Resume int
	Kind   BoundaryKind
}

// BoundaryLocator finds structural boundaries in marker-stripped text.
// Implementations are pure functions of their input and return boundaries
// in ascending, non-overlapping order. The markup generator owns all
// splitting decisions.
type BoundaryLocator interface {
	Locate(plain string) []Boundary
}

// BoundaryLocatorFunc adapts a function to the BoundaryLocator interface.
type BoundaryLocatorFunc func(plain string) []Boundary

// Locate calls f.
func (f BoundaryLocatorFunc) Locate(plain string) []Boundary { return f(plain) }

// NoBoundaries treats the whole document as a single block.
type NoBoundaries struct{}

// Locate returns no boundaries.
func (NoBoundaries) Locate(string) []Boundary { return nil }

// LineBoundaries marks a boundary at every hard line break, including a
// trailing one. Terminal output uses this so that styles never bleed
// across line ends.
type LineBoundaries struct{}

// Locate returns one boundary per newline run in plain.
func (LineBoundaries) Locate(plain string) []Boundary {
	var bounds []Boundary
	i := 0
	for i < len(plain) {
		j := strings.IndexByte(plain[i:], '\n')
		if j < 0 {
			break
		}
		off := i + j
		if off > i && plain[off-1] == '\r' {
			off--
		}
		k := i + j + 1
		for k < len(plain) && (plain[k] == '\n' || plain[k] == '\r') {
			k++
		}
		bounds = append(bounds, Boundary{Offset: off, Resume: k, Kind: BoundaryLine})
		i = k
	}
	return bounds
}

// MarkdownBoundaries locates the Markdown block breaks that inline markup
// must not cross: blank-line paragraph breaks, ATX headings, list items,
// fenced code delimiters and thematic breaks. It works by collecting the
// maximal inline content segments of the document; each gap between two
// segments is one boundary whose separator carries the block syntax. Lines
// inside a fenced code block form a single segment with no internal
// boundaries. Setext headings and indented code blocks are not detected.
type MarkdownBoundaries struct{}

// Locate scans plain line by line and returns the gaps between inline
// content segments.
func (MarkdownBoundaries) Locate(plain string) []Boundary {
	segs := collectSegments(plain)
	if len(segs) < 2 {
		return nil
	}
	bounds := make([]Boundary, 0, len(segs)-1)
	for i := 1; i < len(segs); i++ {
		kind := segs[i].kind
		if segs[i].ruleBefore {
			kind = BoundaryRule
		}
		bounds = append(bounds, Boundary{
			Offset: segs[i-1].end,
			Resume: segs[i].start,
			Kind:   kind,
		})
	}
	return bounds
}

// mdSegment is a maximal run of inline content. kind records the construct
// that opened it; ruleBefore is set when a thematic break separates it from
// the previous segment.
type mdSegment struct {
	start, end int
	kind       BoundaryKind
	ruleBefore bool
}

func collectSegments(plain string) []mdSegment {
	var segs []mdSegment
	var cur mdSegment
	open := false
	inFence := false
	fenceWait := false
	var fenceChar byte
	fenceLen := 0
	ruleSeen := false

	closeSeg := func() {
		if open && cur.end > cur.start {
			segs = append(segs, cur)
		}
		open = false
	}
	openSeg := func(start, end int, kind BoundaryKind) {
		cur = mdSegment{start: start, end: end, kind: kind, ruleBefore: ruleSeen}
		open = true
		ruleSeen = false
	}

	ls := 0
	for ls < len(plain) {
		le := len(plain)
		if j := strings.IndexByte(plain[ls:], '\n'); j >= 0 {
			le = ls + j
		}
		line := plain[ls:le]

		if inFence {
			if closesFence(line, fenceChar, fenceLen) {
				inFence = false
				fenceWait = false
				closeSeg()
			} else if fenceWait {
				openSeg(ls, trimLineEnd(plain, ls, le), BoundaryFence)
				fenceWait = false
			} else if open {
				cur.end = trimLineEnd(plain, ls, le)
			}
			ls = le + 1
			continue
		}

		switch class, fc, fl := classifyLine(line); class {
		case lineBlank:
			closeSeg()
		case lineRule:
			closeSeg()
			ruleSeen = true
		case lineFenceDelim:
			closeSeg()
			inFence = true
			fenceWait = true
			fenceChar = fc
			fenceLen = fl
		case lineHeading:
			closeSeg()
			if s := ls + headingContentStart(line); s < trimLineEnd(plain, ls, le) {
				openSeg(s, trimLineEnd(plain, ls, le), BoundaryHeading)
			}
			closeSeg()
		case lineListItem:
			closeSeg()
			if s := ls + listContentStart(line); s < trimLineEnd(plain, ls, le) {
				openSeg(s, trimLineEnd(plain, ls, le), BoundaryListItem)
			}
		case lineText:
			if open {
				cur.end = trimLineEnd(plain, ls, le)
			} else {
				openSeg(ls+leadingIndent(line), trimLineEnd(plain, ls, le), BoundaryParagraph)
			}
		}
		ls = le + 1
	}
	closeSeg()
	return segs
}

// trimLineEnd returns the offset just past the line's content, excluding
// trailing spaces, tabs and carriage returns. Whitespace next to a block
// break falls outside any reopened highlight.
func trimLineEnd(plain string, ls, le int) int {
	for le > ls {
		switch plain[le-1] {
		case ' ', '\t', '\r':
			le--
		default:
			return le
		}
	}
	return le
}

func leadingIndent(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}

// headingContentStart returns the offset of the heading text within a line
// already classified as an ATX heading.
func headingContentStart(line string) int {
	n := leadingIndent(line)
	for n < len(line) && line[n] == '#' {
		n++
	}
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}

// listContentStart returns the offset of the item text within a line
// already classified as a list item.
func listContentStart(line string) int {
	n := leadingIndent(line)
	c := line[n]
	if c == '-' || c == '+' || c == '*' {
		n++
	} else {
		for n < len(line) && line[n] >= '0' && line[n] <= '9' {
			n++
		}
		n++ // '.' or ')'
	}
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}

type lineClass uint8

const (
	lineBlank lineClass = iota
	lineText
	lineHeading
	lineRule
	lineFenceDelim
	lineListItem
)

// classifyLine decides what block construct a line begins. For fence
// delimiters it also reports the fence character and length.
func classifyLine(line string) (lineClass, byte, int) {
	if isBlankLine(line) {
		return lineBlank, 0, 0
	}
	rest, ok := trimBlockIndent(line)
	if !ok {
		return lineText, 0, 0
	}
	if fc, fl, isFence := parseFenceDelim(rest); isFence {
		return lineFenceDelim, fc, fl
	}
	if isThematicBreak(rest) {
		return lineRule, 0, 0
	}
	if isATXHeading(rest) {
		return lineHeading, 0, 0
	}
	if isListItemStart(rest) {
		return lineListItem, 0, 0
	}
	return lineText, 0, 0
}

func isBlankLine(line string) bool {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' && line[i] != '\r' {
			return false
		}
	}
	return true
}

// trimBlockIndent strips up to three leading spaces. More indentation means
// the line cannot start a block construct.
func trimBlockIndent(line string) (string, bool) {
	n := leadingIndent(line)
	if n > 3 {
		return "", false
	}
	return line[n:], true
}

func parseFenceDelim(rest string) (byte, int, bool) {
	if len(rest) < 3 {
		return 0, 0, false
	}
	c := rest[0]
	if c != '`' && c != '~' {
		return 0, 0, false
	}
	n := 0
	for n < len(rest) && rest[n] == c {
		n++
	}
	if n < 3 {
		return 0, 0, false
	}
	return c, n, true
}

func closesFence(line string, fenceChar byte, fenceLen int) bool {
	rest, ok := trimBlockIndent(line)
	if !ok {
		return false
	}
	n := 0
	for n < len(rest) && rest[n] == fenceChar {
		n++
	}
	if n < fenceLen {
		return false
	}
	for ; n < len(rest); n++ {
		if rest[n] != ' ' && rest[n] != '\t' && rest[n] != '\r' {
			return false
		}
	}
	return true
}

func isThematicBreak(rest string) bool {
	var c byte
	count := 0
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case ' ', '\t', '\r':
			continue
		case '-', '*', '_':
			if c == 0 {
				c = rest[i]
			} else if rest[i] != c {
				return false
			}
			count++
		default:
			return false
		}
	}
	return count >= 3
}

func isATXHeading(rest string) bool {
	n := 0
	for n < len(rest) && rest[n] == '#' {
		n++
	}
	if n < 1 || n > 6 {
		return false
	}
	return n == len(rest) || rest[n] == ' ' || rest[n] == '\t'
}

func isListItemStart(rest string) bool {
	c := rest[0]
	if c == '-' || c == '+' || c == '*' {
		return len(rest) > 1 && (rest[1] == ' ' || rest[1] == '\t')
	}
	n := 0
	for n < len(rest) && n < 9 && rest[n] >= '0' && rest[n] <= '9' {
		n++
	}
	if n == 0 {
		return false
	}
	if n >= len(rest) || (rest[n] != '.' && rest[n] != ')') {
		return false
	}
	return n+1 < len(rest) && (rest[n+1] == ' ' || rest[n+1] == '\t')
}
