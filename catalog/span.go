package catalog

type boundKind int

// boundUnbounded is the zero value so that the zero Span selects every rank.
const (
	boundUnbounded boundKind = iota
	boundIncluded
	boundExcluded
)

// Bound is one endpoint of a rank span.
type Bound struct {
	kind  boundKind
	index int
}

// Included bounds the span at the given rank, rank included.
func Included(rank int) Bound { return Bound{kind: boundIncluded, index: rank} }

// Excluded bounds the span at the given rank, rank excluded.
func Excluded(rank int) Bound { return Bound{kind: boundExcluded, index: rank} }

// Unbounded leaves the endpoint open.
func Unbounded() Bound { return Bound{kind: boundUnbounded} }

// Span selects a contiguous run of ranks. The zero value selects every rank.
type Span struct {
	Start Bound
	End   Bound
}

// Bounds maps the span onto concrete inclusive indices over n ranks.
// An excluded start collapses to 0; an excluded end of 0 is invalid rather
// than empty, and stays that way on purpose.
func (s Span) Bounds(n int) (lo, hi int, ok bool) {
	switch s.Start.kind {
	case boundIncluded:
		lo = s.Start.index
	default:
		lo = 0
	}

	switch s.End.kind {
	case boundIncluded:
		hi = s.End.index
	case boundExcluded:
		if s.End.index <= 0 {
			return 0, 0, false
		}
		hi = s.End.index - 1
	default:
		hi = n - 1
	}

	if lo < 0 || lo > hi || hi >= n {
		return 0, 0, false
	}
	return lo, hi, true
}
