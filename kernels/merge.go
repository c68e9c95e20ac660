package kernels

import "github.com/sbl8/meshx/core"

// MergeCount runs the two-pointer merge over two sorted, pairwise
// disjoint interval rows and returns the number of intervals their
// intersection produces, without writing any output. It must visit
// intervals in exactly the order MergeFill does, so that a later fill
// pass writing the k-th output at the row's base offset plus k lines up
// with what this pass counted.
func MergeCount(a, b []core.Interval) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	ia, ib := 0, 0
	k := 0
	for ia < len(a) && ib < len(b) {
		s := max32(a[ia].Begin, b[ib].Begin)
		e := min32(a[ia].End, b[ib].End)
		if s < e {
			k++
		}
		switch {
		case a[ia].End < b[ib].End:
			ia++
		case b[ib].End < a[ia].End:
			ib++
		default:
			ia++
			ib++
		}
	}
	return k
}

// MergeFill runs the same two-pointer merge as MergeCount, but writes
// each intersected interval into out (which must have length at least
// MergeCount(a, b)) instead of only counting it. It returns the number
// of intervals written, which callers may assert equals the count phase
// produced for the same row as a cross-check.
func MergeFill(a, b []core.Interval, out []core.Interval) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	ia, ib := 0, 0
	k := 0
	for ia < len(a) && ib < len(b) {
		s := max32(a[ia].Begin, b[ib].Begin)
		e := min32(a[ia].End, b[ib].End)
		if s < e {
			out[k] = core.Interval{Begin: s, End: e}
			k++
		}
		switch {
		case a[ia].End < b[ib].End:
			ia++
		case b[ib].End < a[ia].End:
			ib++
		default:
			ia++
			ib++
		}
	}
	return k
}

func max32(a, b core.Coord) core.Coord {
	if a > b {
		return a
	}
	return b
}

func min32(a, b core.Coord) core.Coord {
	if a < b {
		return a
	}
	return b
}
