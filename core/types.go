// Package core provides the fundamental primitives of the meshx sparse CSR
// mesh: coordinates, half-open intervals, row keys, and the Mesh type
// itself, along with the invariant checks every phase of the intersection
// pipeline assumes on input and must reestablish on output.
package core

// Coord is a signed 32-bit mesh coordinate. Every interval endpoint and
// every row key component is a Coord; arithmetic on them must not
// overflow, which is why callers doing endpoint math (max/min of two
// Coords) never need to widen — Coord already leaves headroom for the
// comparisons the two-pointer merge performs.
type Coord = int32

// Interval is the half-open set of integer X values [Begin, End).
// Invariant: Begin < End. Empty intervals are never stored — a `Begin ==
// End` interval is simply omitted, not represented.
type Interval struct {
	Begin Coord
	End   Coord
}

// Len returns the number of integer points the interval covers.
func (iv Interval) Len() int64 {
	return int64(iv.End) - int64(iv.Begin)
}

// Empty reports whether the interval covers no points.
func (iv Interval) Empty() bool {
	return iv.Begin >= iv.End
}

// Overlaps reports whether iv and other share at least one integer point.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Begin < other.End && other.Begin < iv.End
}

// Touches reports whether iv and other are adjacent but disjoint, i.e.
// one's End equals the other's Begin. Two touching half-open intervals
// denote a contiguous run and must be coalesced before being stored in a
// canonical Mesh.
func (iv Interval) Touches(other Interval) bool {
	return iv.End == other.Begin || other.End == iv.Begin
}

// RowKey identifies a row of a mesh by its (Y, Z) coordinate. Rows are
// totally ordered lexicographically by (Y, then Z).
type RowKey struct {
	Y Coord
	Z Coord
}

// Less reports whether k orders strictly before other under the
// lexicographic RowKey order.
func (k RowKey) Less(other RowKey) bool {
	if k.Y != other.Y {
		return k.Y < other.Y
	}
	return k.Z < other.Z
}

// Compare returns -1, 0, or 1 as k orders before, equal to, or after
// other under the lexicographic RowKey order.
func (k RowKey) Compare(other RowKey) int {
	switch {
	case k.Y < other.Y:
		return -1
	case k.Y > other.Y:
		return 1
	case k.Z < other.Z:
		return -1
	case k.Z > other.Z:
		return 1
	default:
		return 0
	}
}
