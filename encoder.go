package overmark

// MarkKind selects the markup element a frame opens.
type MarkKind uint8

const (
	// MarkHighlight is a single highlight element. Under double coverage it
	// is also the outer element.
	MarkHighlight MarkKind = iota
	// MarkInner is the inner element under double coverage.
	MarkInner
	// MarkStack is the collapsed element for triple or deeper coverage.
	MarkStack
)

// SpanInfo carries a span's identity and resolved metadata into encoders.
// Known is false on a metadata miss; encoders then fall back to their
// neutral category.
type SpanInfo struct {
	ID       SpanID
	Category string
	Priority int
	Known    bool
}

// Mark is one frame of the output nesting stack.
type Mark struct {
	Kind   MarkKind
	Span   SpanInfo // represented span; for MarkStack the accent span
	Layers int      // MarkStack only: number of covering spans
}

// sameMark reports whether two frames open the same output element.
func sameMark(a, b Mark) bool {
	return a.Kind == b.Kind && a.Span.ID == b.Span.ID && a.Layers == b.Layers
}

// Encoder renders the generator's markup events in one output format.
// Calls arrive strictly nested: Close always names the most recently
// opened mark still open. Separator text between blocks arrives through
// Text while no mark is open.
type Encoder interface {
	Text(s string) error
	Open(m Mark) error
	Close(m Mark) error
	Ref(id SpanID) error
	Flush() error
}
