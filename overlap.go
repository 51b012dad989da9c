package overmark

// Overlap classifies how many spans cover a region. Every consumer
// switches over all four variants explicitly.
type Overlap uint8

const (
	// OverlapNone covers unhighlighted text.
	OverlapNone Overlap = iota
	// OverlapSingle is exactly one active span.
	OverlapSingle
	// OverlapDouble is exactly two active spans, rendered two-level with
	// the earliest started span outermost.
	OverlapDouble
	// OverlapMany is three or more active spans, rendered as a single
	// collapsed stack element.
	OverlapMany
)

// overlapOf maps an active span count to its encoding class.
func overlapOf(n int) Overlap {
	switch {
	case n <= 0:
		return OverlapNone
	case n == 1:
		return OverlapSingle
	case n == 2:
		return OverlapDouble
	default:
		return OverlapMany
	}
}
