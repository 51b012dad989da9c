package overmark

import "fmt"

// UnmatchedSpanError reports a span end marker whose id has no open span.
type UnmatchedSpanError struct {
	ID     SpanID
	Offset int
}

func (e *UnmatchedSpanError) Error() string {
	return fmt.Sprintf("unmatched span end %q at offset %d", e.ID, e.Offset)
}

// DuplicateSpanOpenError reports a span start marker for an id that is
// already open.
type DuplicateSpanOpenError struct {
	ID     SpanID
	Offset int
}

func (e *DuplicateSpanOpenError) Error() string {
	return fmt.Sprintf("duplicate span open %q at offset %d", e.ID, e.Offset)
}

// UnterminatedSpanError reports spans still open when the input ends.
// IDs are in open order.
type UnterminatedSpanError struct {
	IDs []SpanID
}

func (e *UnterminatedSpanError) Error() string {
	if len(e.IDs) == 1 {
		return fmt.Sprintf("unterminated span %q at end of input", e.IDs[0])
	}
	return fmt.Sprintf("%d unterminated spans at end of input, first %q", len(e.IDs), e.IDs[0])
}
