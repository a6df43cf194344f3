// Package seating defines the span model used by the seat selector.
package seating

// SpanKind tells how a span of free seats is bounded.
type SpanKind int

const (
	// Interior spans have a taken seat directly on both sides.
	Interior SpanKind = iota
	// Edge spans touch the first and/or the last seat of the row.
	Edge
)

// String returns "interior" or "edge".
func (k SpanKind) String() string {
	if k == Edge {
		return "edge"
	}
	return "interior"
}

// Span is a maximal run of free seats, Start..End inclusive.
type Span struct {
	Start, End int // Indices of the first and last free seat
	Kind       SpanKind
}

// Width is the distance between the first and last free seat of the span.
// A single free seat has width 0.
func (s Span) Width() int {
	return s.End - s.Start
}

// Score ranks the span against others: the full width for Edge spans,
// where only one neighbor exists, and half the width for Interior spans.
// Interior scores may be fractional (width 3 scores 1.5).
func (s Span) Score() float64 {
	if s.Kind == Edge {
		return float64(s.Width())
	}
	return float64(s.Width()) / 2
}

// Seat returns the seat this span offers. Edge spans offer the outermost
// seat, preferring index 0 when the span touches both ends. Interior spans
// offer Start+floor(Score()), so odd gaps lean left.
func (s Span) Seat() int {
	switch {
	case s.Kind == Edge && s.Start == 0:
		return 0
	case s.Kind == Edge:
		return s.End
	default:
		return s.Start + int(s.Score())
	}
}
