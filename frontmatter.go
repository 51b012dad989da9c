package overmark

import "bytes"

// Annotated exports may carry their span metadata inline, as a front
// matter block ahead of the document body:
//
//	---
//	spans:
//	  - id: a1
//	    category: yellow
//	    priority: 2
//	---
//
// splitFrontMatter detects such a block, harvests any span metadata it
// holds and returns the body without it. Only YAML ("---") blocks are
// parsed for metadata; TOML ("+++") and JSON (";;;") blocks are stripped
// unparsed, since the metadata convention is YAML. A block that fails to
// parse is still stripped: decorative metadata must never block an
// export. Sources without a front matter block pass through untouched.
func splitFrontMatter(src []byte) ([]SpanMeta, []byte) {
	openLine, openNext := nextLine(src, 0)
	delim, isFrontMatter := parseFrontMatterDelimiter(openLine)
	if !isFrontMatter {
		return nil, src
	}
	secondLine, secondNext := nextLine(src, openNext)
	if secondNext == openNext || !frontMatterMetadataLikely(secondLine) {
		return nil, src
	}
	closeStart, closeNext, found := findClosingDelimiter(src, secondNext, delim)
	if !found {
		return nil, src
	}
	body := src[closeNext:]
	if !bytes.Equal(delim, []byte("---")) {
		return nil, body
	}
	metas, err := ParseMetadata(src[openNext:closeStart])
	if err != nil {
		return nil, body
	}
	return metas, body
}

// nextLine returns the line starting at start without its terminator, and
// the offset of the following line. A missing trailing newline still
// yields the final line; next == start marks exhaustion.
func nextLine(src []byte, start int) ([]byte, int) {
	if start >= len(src) {
		return nil, start
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src)
	}
	return trimCR(src[start : start+i]), start + i + 1
}

func parseFrontMatterDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(trimBOM(line))
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return []byte("---"), true
	case bytes.Equal(trimmed, []byte("+++")):
		return []byte("+++"), true
	case bytes.Equal(trimmed, []byte(";;;")):
		return []byte(";;;"), true
	default:
		return nil, false
	}
}

// frontMatterMetadataLikely guards against a thematic break at the top of
// a document masquerading as an opening delimiter: the first line inside
// a real block looks like metadata.
func frontMatterMetadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	return bytes.Contains(trimmed, []byte(":")) || bytes.Contains(trimmed, []byte("="))
}

// findClosingDelimiter returns the closing delimiter's line start and the
// offset just past its line.
func findClosingDelimiter(src []byte, start int, delim []byte) (int, int, bool) {
	for idx := start; idx < len(src); {
		line, next := nextLine(src, idx)
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return idx, next, true
		}
		if next == idx {
			break
		}
		idx = next
	}
	return 0, 0, false
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
