package overmark

import (
	"io"
	"strings"
	"unsafe"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/muesli/reflow/ansi"
)

const ansiReset = "\x1b[0m"

// TermEncoder renders highlights as ANSI-styled terminal text. The visible
// style follows the top of the open mark stack: single coverage uses the
// category style, the inner layer of double coverage adds the theme's
// inner overlay, and collapsed coverage uses the stack style accented by
// the highest-priority span. Styles are always reset before a newline and
// re-asserted afterwards, so no background ever bleeds across line ends.
//
// With a positive width the encoder hard-wraps at grapheme cluster
// boundaries, breaking at the last space run that fits. Width zero
// disables wrapping; output text is then byte-identical to the input once
// escape sequences are stripped.
type TermEncoder struct {
	w         io.Writer
	styles    Styles
	width     int
	style     string // prefix currently active on the wire
	override  string // style override while emitting references
	lineWidth int
	stack     []Mark
	stackArr  [8]Mark
	refArr    [160]byte
}

// NewTermEncoder returns an encoder writing ANSI text to w. A nil theme
// selects the default theme. Width <= 0 disables wrapping.
func NewTermEncoder(w io.Writer, th Theme, width int) *TermEncoder {
	if th == nil {
		th = DefaultTheme()
	}
	e := &TermEncoder{w: w, styles: th.Styles(), width: width}
	e.stack = e.stackArr[:0]
	return e
}

// Width returns the configured wrap width.
func (e *TermEncoder) Width() int {
	return e.width
}

// SetWidth updates the wrap width.
func (e *TermEncoder) SetWidth(width int) {
	e.width = width
}

// Text writes region or separator text, wrapping and splitting lines.
func (e *TermEncoder) Text(s string) error {
	for s != "" {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			return e.writeWrapped(s)
		}
		if err := e.writeWrapped(s[:i]); err != nil {
			return err
		}
		if err := e.newline(); err != nil {
			return err
		}
		s = s[i+1:]
	}
	return nil
}

// Open pushes a mark frame; subsequent text renders in its style.
func (e *TermEncoder) Open(m Mark) error {
	e.stack = append(e.stack, m)
	return nil
}

// Close pops the innermost mark frame.
func (e *TermEncoder) Close(Mark) error {
	if len(e.stack) > 0 {
		e.stack = e.stack[:len(e.stack)-1]
	}
	return nil
}

// Ref writes one annotation reference command in the reference style.
func (e *TermEncoder) Ref(id SpanID) error {
	buf := e.refArr[:0]
	buf = append(buf, "[^"...)
	buf = append(buf, id...)
	buf = append(buf, ']')
	e.override = e.styles.Reference.Prefix
	err := e.writeWrapped(bytesToString(buf))
	e.override = ""
	return err
}

// Flush resets any active style.
func (e *TermEncoder) Flush() error {
	if e.style != "" {
		e.style = ""
		if _, err := io.WriteString(e.w, ansiReset); err != nil {
			return err
		}
	}
	return nil
}

func (e *TermEncoder) desiredStyle() string {
	if e.override != "" {
		return e.override
	}
	if len(e.stack) == 0 {
		return e.styles.Text.Prefix
	}
	top := e.stack[len(e.stack)-1]
	switch top.Kind {
	case MarkHighlight:
		return e.categoryPrefix(top.Span)
	case MarkInner:
		return e.styles.Inner.Prefix + e.categoryPrefix(top.Span)
	case MarkStack:
		return e.styles.Stack.Prefix + e.categoryPrefix(top.Span)
	}
	return e.styles.Text.Prefix
}

func (e *TermEncoder) categoryPrefix(info SpanInfo) string {
	if !info.Known || info.Category == "" {
		return e.styles.Neutral.Prefix
	}
	return e.styles.Category(info.Category).Prefix
}

// writeWrapped emits one newline-free segment, hard-wrapping when a width
// is configured.
func (e *TermEncoder) writeWrapped(seg string) error {
	if e.width <= 0 {
		return e.emit(seg)
	}
	for seg != "" {
		head, tail, ok := wrapSplit(seg, e.width-e.lineWidth)
		if !ok {
			if e.lineWidth > 0 {
				if err := e.newline(); err != nil {
					return err
				}
				continue
			}
			head, tail, _ = wrapSplit(seg, e.width)
			if head == "" {
				head, tail = firstCluster(seg)
			}
		}
		if tail == "" {
			return e.emit(head)
		}
		if err := e.emit(head); err != nil {
			return err
		}
		if err := e.newline(); err != nil {
			return err
		}
		seg = tail
	}
	return nil
}

// emit writes text in the current style, asserting it on the wire when it
// differs from the active one.
func (e *TermEncoder) emit(text string) error {
	if text == "" {
		return nil
	}
	if desired := e.desiredStyle(); desired != e.style {
		if e.style != "" {
			if _, err := io.WriteString(e.w, ansiReset); err != nil {
				return err
			}
		}
		e.style = desired
		if e.style != "" {
			if _, err := io.WriteString(e.w, e.style); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(e.w, text)
	e.lineWidth += ansi.PrintableRuneWidth(text)
	return err
}

func (e *TermEncoder) newline() error {
	if e.style != "" {
		e.style = ""
		if _, err := io.WriteString(e.w, ansiReset); err != nil {
			return err
		}
	}
	_, err := io.WriteString(e.w, "\n")
	e.lineWidth = 0
	return err
}

// wrapSplit splits seg so that head fits within avail printable cells,
// breaking at the last space run when one exists; the break run itself is
// dropped. ok is false when not even the first grapheme cluster fits.
func wrapSplit(seg string, avail int) (head, tail string, ok bool) {
	used := 0
	spaceStart, spaceEnd := -1, -1
	pos := 0
	g := graphemes.FromString(seg)
	for g.Next() {
		cluster := g.Value()
		cw := ansi.PrintableRuneWidth(cluster)
		if used+cw > avail {
			if spaceStart >= 0 {
				return seg[:spaceStart], seg[spaceEnd:], true
			}
			if pos == 0 {
				return "", seg, false
			}
			return seg[:pos], seg[pos:], true
		}
		if cluster == " " || cluster == "\t" {
			if spaceEnd != pos {
				spaceStart = pos
			}
			spaceEnd = pos + len(cluster)
		}
		pos += len(cluster)
		used += cw
	}
	return seg, "", true
}

func firstCluster(s string) (string, string) {
	g := graphemes.FromString(s)
	if g.Next() {
		c := g.Value()
		return c, s[len(c):]
	}
	return s, ""
}

func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
