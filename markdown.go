package overmark

import (
	"io"
	"strconv"
	"strings"
)

// MarkdownEncoder writes highlights as Markdown with inline HTML mark
// elements and footnote-style annotation references. Region text passes
// through verbatim; the source document owns its own content encoding.
//
// Single coverage and the outer layer of double coverage open
//
//	<mark class="om-hl om-<category>" data-span="<id>">
//
// the inner layer opens <mark class="om-hl-inner ...">, and collapsed
// coverage of three or more spans opens a single
//
//	<mark class="om-hl om-stack om-<category>" data-layers="N">
//
// accented by the highest-priority covering span. Unknown categories
// degrade to om-default. Annotation references are written as [^id].
type MarkdownEncoder struct {
	w      io.Writer
	buf    []byte
	bufArr [4096]byte
}

// NewMarkdownEncoder returns an encoder writing Markdown to w.
func NewMarkdownEncoder(w io.Writer) *MarkdownEncoder {
	e := &MarkdownEncoder{w: w}
	e.buf = e.bufArr[:0]
	return e
}

// Text appends region or separator text verbatim.
func (e *MarkdownEncoder) Text(s string) error {
	e.buf = append(e.buf, s...)
	return nil
}

// Open writes the opening mark element for m.
func (e *MarkdownEncoder) Open(m Mark) error {
	e.buf = append(e.buf, `<mark class="`...)
	switch m.Kind {
	case MarkHighlight:
		e.buf = append(e.buf, `om-hl `...)
		e.buf = append(e.buf, categoryClass(m.Span)...)
	case MarkInner:
		e.buf = append(e.buf, `om-hl-inner `...)
		e.buf = append(e.buf, categoryClass(m.Span)...)
	case MarkStack:
		e.buf = append(e.buf, `om-hl om-stack `...)
		e.buf = append(e.buf, categoryClass(m.Span)...)
	}
	e.buf = append(e.buf, '"')
	switch m.Kind {
	case MarkHighlight, MarkInner:
		e.buf = append(e.buf, ` data-span="`...)
		e.buf = append(e.buf, m.Span.ID...)
		e.buf = append(e.buf, '"')
	case MarkStack:
		e.buf = append(e.buf, ` data-layers="`...)
		e.buf = strconv.AppendInt(e.buf, int64(m.Layers), 10)
		e.buf = append(e.buf, '"')
	}
	e.buf = append(e.buf, '>')
	return nil
}

// Close writes the closing mark element.
func (e *MarkdownEncoder) Close(Mark) error {
	e.buf = append(e.buf, `</mark>`...)
	return nil
}

// Ref writes one annotation reference command.
func (e *MarkdownEncoder) Ref(id SpanID) error {
	e.buf = append(e.buf, `[^`...)
	e.buf = append(e.buf, id...)
	e.buf = append(e.buf, ']')
	return nil
}

// Flush writes buffered output to the underlying writer.
func (e *MarkdownEncoder) Flush() error {
	if len(e.buf) == 0 {
		return nil
	}
	_, err := e.w.Write(e.buf)
	e.buf = e.buf[:0]
	return err
}

// categoryClass maps resolved span metadata to an output class name.
// Metadata misses and empty categories degrade to the neutral class.
func categoryClass(info SpanInfo) string {
	if !info.Known || info.Category == "" {
		return "om-default"
	}
	return "om-" + sanitizeClass(info.Category)
}

// sanitizeClass lowercases a category and maps bytes outside [a-z0-9_-]
// to '-' so the result is always a safe class token.
func sanitizeClass(category string) string {
	lower := strings.ToLower(category)
	clean := true
	for i := 0; i < len(lower); i++ {
		if !isClassByte(lower[i]) {
			clean = false
			break
		}
	}
	if clean {
		return lower
	}
	b := []byte(lower)
	for i := range b {
		if !isClassByte(b[i]) {
			b[i] = '-'
		}
	}
	return string(b)
}

func isClassByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '_':
		return true
	}
	return false
}
