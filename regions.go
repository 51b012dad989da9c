package overmark

import "strings"

// Region is a maximal run of text over which the set of active spans is
// constant. Active holds ids in span start order; output nesting derives
// from that order. Refs holds annotation references attached to this
// region, in arrival order.
type Region struct {
	Text   string
	Active []SpanID
	Refs   []SpanID
}

// BuildRegions folds a token stream into regions. Every span marker flushes
// the text accumulated since the previous marker, tagged with the set of
// spans active before the marker takes effect. Annotation references do not
// flush; they attach to the region their surrounding text belongs to.
//
// A non-nil error means the stream is structurally invalid and no output
// may be produced from it.
func BuildRegions(toks []Token) ([]Region, error) {
	var b regionBuilder
	b.reset()
	return b.build(toks)
}

type regionBuilder struct {
	regions []Region
	active  []SpanID
	pending []SpanID
	seen    map[SpanID]bool

	// accumulator: single-slice fast path, builder once a second part lands
	acc      strings.Builder
	accOne   string
	accParts int
}

func (b *regionBuilder) reset() {
	b.regions = b.regions[:0]
	b.active = b.active[:0]
	b.pending = b.pending[:0]
	if b.seen == nil {
		b.seen = make(map[SpanID]bool)
	} else {
		clear(b.seen)
	}
	b.resetAcc()
}

func (b *regionBuilder) build(toks []Token) ([]Region, error) {
	for _, t := range toks {
		if err := b.feed(t); err != nil {
			return nil, err
		}
	}
	return b.finish()
}

func (b *regionBuilder) feed(t Token) error {
	switch t.Kind {
	case tokenText:
		b.accumulate(t.Text)
	case tokenSpanStart:
		if b.activeIndex(t.ID) >= 0 {
			return &DuplicateSpanOpenError{ID: t.ID, Offset: t.Offset}
		}
		b.flush(false)
		b.active = append(b.active, t.ID)
	case tokenSpanEnd:
		i := b.activeIndex(t.ID)
		if i < 0 {
			return &UnmatchedSpanError{ID: t.ID, Offset: t.Offset}
		}
		// a zero-width span still yields an empty region so its id and any
		// attached annotation reference survive into the output
		b.flush(!b.seen[t.ID])
		b.active = append(b.active[:i], b.active[i+1:]...)
	case tokenAnnotationRef:
		b.pending = append(b.pending, t.ID)
	}
	return nil
}

func (b *regionBuilder) finish() ([]Region, error) {
	if len(b.active) > 0 {
		ids := make([]SpanID, len(b.active))
		copy(ids, b.active)
		return nil, &UnterminatedSpanError{IDs: ids}
	}
	if txt := b.accText(); txt != "" || len(b.pending) > 0 {
		b.emit(txt)
	}
	return b.regions, nil
}

// flush closes the accumulated text as a region tagged with the current
// active set. Empty accumulators emit nothing unless force is set.
func (b *regionBuilder) flush(force bool) {
	txt := b.accText()
	if txt == "" && !force {
		return
	}
	b.emit(txt)
	b.resetAcc()
}

func (b *regionBuilder) emit(txt string) {
	r := Region{Text: txt}
	if len(b.active) > 0 {
		r.Active = make([]SpanID, len(b.active))
		copy(r.Active, b.active)
		for _, id := range b.active {
			b.seen[id] = true
		}
	}
	if len(b.pending) > 0 {
		r.Refs = make([]SpanID, len(b.pending))
		copy(r.Refs, b.pending)
		b.pending = b.pending[:0]
	}
	b.regions = append(b.regions, r)
}

func (b *regionBuilder) activeIndex(id SpanID) int {
	for i, a := range b.active {
		if a == id {
			return i
		}
	}
	return -1
}

func (b *regionBuilder) accumulate(s string) {
	switch b.accParts {
	case 0:
		b.accOne = s
	case 1:
		b.acc.WriteString(b.accOne)
		b.acc.WriteString(s)
	default:
		b.acc.WriteString(s)
	}
	b.accParts++
}

func (b *regionBuilder) accText() string {
	switch b.accParts {
	case 0:
		return ""
	case 1:
		return b.accOne
	default:
		return b.acc.String()
	}
}

func (b *regionBuilder) resetAcc() {
	b.acc.Reset()
	b.accOne = ""
	b.accParts = 0
}
