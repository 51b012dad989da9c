package overmark

// Generate renders regions through enc. bounds must be the locator output
// for the concatenation of the region texts, in ascending order; meta may
// be nil. The output nesting stack is replanned at every region transition
// so that interleaved spans still produce properly nested markup, and the
// whole stack is closed and reopened around every structural boundary.
// Annotation references are emitted exactly once per id across the whole
// run, after the closes of the region they are attached to.
func Generate(regions []Region, bounds []Boundary, meta *MetadataSet, enc Encoder) error {
	var g generator
	g.init(meta, bounds, enc)
	return g.run(regions)
}

type generator struct {
	enc    Encoder
	meta   *MetadataSet
	bounds []Boundary
	bi     int
	cursor int

	open       []Mark
	openArr    [8]Mark
	desiredArr [2]Mark
	nextArr    [2]Mark
	emitted    map[SpanID]bool
}

func (g *generator) init(meta *MetadataSet, bounds []Boundary, enc Encoder) {
	g.enc = enc
	g.meta = meta
	g.bounds = bounds
	g.bi = 0
	g.cursor = 0
	g.open = g.openArr[:0]
	g.emitted = nil
}

func (g *generator) run(regions []Region) error {
	for i := range regions {
		desired := g.framesInto(g.desiredArr[:0], regions[i].Active)
		if err := g.region(regions[i], desired); err != nil {
			return err
		}
		next := g.nextArr[:0]
		if i+1 < len(regions) {
			next = g.framesInto(next, regions[i+1].Active)
		}
		if err := g.closeToward(next); err != nil {
			return err
		}
		if err := g.emitRefs(regions[i].Refs); err != nil {
			return err
		}
	}
	if err := g.closeToward(nil); err != nil {
		return err
	}
	return g.enc.Flush()
}

// region emits one region's text, splitting it around any structural
// boundary that falls inside its span. Marks open lazily, directly before
// the first marked byte, so a split at the region's leading edge does not
// produce an empty element.
func (g *generator) region(r Region, desired []Mark) error {
	start := g.cursor
	end := start + len(r.Text)
	if len(r.Text) == 0 {
		// zero-width span: materialize the element so the id and any
		// attached annotation reference survive
		if len(desired) > 0 {
			return g.retarget(desired)
		}
		return nil
	}
	pos := start
	for g.bi < len(g.bounds) {
		b := g.bounds[g.bi]
		if b.Offset >= end {
			break
		}
		if b.Resume <= start {
			g.bi++
			continue
		}
		off, res := b.Offset, b.Resume
		if off < pos {
			off = pos
		}
		if res > end {
			res = end
		}
		if off > pos {
			if err := g.retarget(desired); err != nil {
				return err
			}
			if err := g.enc.Text(r.Text[pos-start : off-start]); err != nil {
				return err
			}
		}
		if err := g.closeToward(nil); err != nil {
			return err
		}
		if res > off {
			if err := g.enc.Text(r.Text[off-start : res-start]); err != nil {
				return err
			}
		}
		pos = res
		if b.Resume > end {
			break
		}
		g.bi++
	}
	if pos < end {
		if err := g.retarget(desired); err != nil {
			return err
		}
		if err := g.enc.Text(r.Text[pos-start:]); err != nil {
			return err
		}
	}
	g.cursor = end
	return nil
}

// retarget closes the divergent suffix of the open stack and opens the
// missing frames so the open stack equals desired.
func (g *generator) retarget(desired []Mark) error {
	p := g.commonPrefix(desired)
	for i := len(g.open) - 1; i >= p; i-- {
		if err := g.enc.Close(g.open[i]); err != nil {
			return err
		}
	}
	g.open = g.open[:p]
	for _, m := range desired[p:] {
		if err := g.enc.Open(m); err != nil {
			return err
		}
		g.open = append(g.open, m)
	}
	return nil
}

// closeToward closes the open frames that do not survive into next, in
// reverse open order. It never opens; opening is deferred until the next
// marked byte so that annotation references and separators land outside
// upcoming elements.
func (g *generator) closeToward(next []Mark) error {
	p := g.commonPrefix(next)
	for i := len(g.open) - 1; i >= p; i-- {
		if err := g.enc.Close(g.open[i]); err != nil {
			return err
		}
	}
	g.open = g.open[:p]
	return nil
}

func (g *generator) commonPrefix(frames []Mark) int {
	p := 0
	for p < len(g.open) && p < len(frames) && sameMark(g.open[p], frames[p]) {
		p++
	}
	return p
}

func (g *generator) emitRefs(refs []SpanID) error {
	for _, id := range refs {
		if g.emitted[id] {
			continue
		}
		if g.emitted == nil {
			g.emitted = make(map[SpanID]bool, 8)
		}
		g.emitted[id] = true
		if err := g.enc.Ref(id); err != nil {
			return err
		}
	}
	return nil
}

// framesInto computes the output element stack for an active set. The
// overlap class decides the shape: one highlight element, a two-level
// nesting with the earliest started span outermost, or one collapsed stack
// element accented by the highest-priority span.
func (g *generator) framesInto(dst []Mark, active []SpanID) []Mark {
	switch overlapOf(len(active)) {
	case OverlapNone:
	case OverlapSingle:
		dst = append(dst, Mark{Kind: MarkHighlight, Span: g.info(active[0])})
	case OverlapDouble:
		dst = append(dst,
			Mark{Kind: MarkHighlight, Span: g.info(active[0])},
			Mark{Kind: MarkInner, Span: g.info(active[1])},
		)
	case OverlapMany:
		dst = append(dst, Mark{
			Kind:   MarkStack,
			Span:   g.info(g.accent(active)),
			Layers: len(active),
		})
	}
	return dst
}

func (g *generator) info(id SpanID) SpanInfo {
	m, ok := g.meta.Lookup(id)
	return SpanInfo{ID: id, Category: m.Category, Priority: m.Priority, Known: ok}
}

// accent picks the highest-priority span of a collapsed stack; ties keep
// the earliest started.
func (g *generator) accent(active []SpanID) SpanID {
	best := active[0]
	bestMeta, _ := g.meta.Lookup(best)
	for _, id := range active[1:] {
		if m, _ := g.meta.Lookup(id); m.Priority > bestMeta.Priority {
			best = id
			bestMeta = m
		}
	}
	return best
}
