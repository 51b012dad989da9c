package overmark

// SpanID identifies a highlight span or annotation. IDs are opaque; the
// upstream pipeline assigns them and metadata lookups key on them.
type SpanID string

// Token is one lexed element of a marker stream.
type Token struct {
	Text   string // literal content, TokenText only
	ID     SpanID // span id, marker tokens only
	Kind   tokenKind
	Offset int // byte offset in the source
}

type tokenKind uint8

// TokenKind is the exported alias of tokenKind for tooling and consumers.
type TokenKind = tokenKind

const (
	tokenText tokenKind = iota
	tokenSpanStart
	tokenSpanEnd
	tokenAnnotationRef
)

const (
	// TokenText represents a run of literal text between markers.
	TokenText tokenKind = tokenText
	// TokenSpanStart marks the opening of a highlight span.
	TokenSpanStart tokenKind = tokenSpanStart
	// TokenSpanEnd marks the closing of a highlight span.
	TokenSpanEnd tokenKind = tokenSpanEnd
	// TokenAnnotationRef is a pointwise reference to annotation content by id.
	TokenAnnotationRef tokenKind = tokenAnnotationRef
)
