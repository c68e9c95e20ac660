package kernels

// DriveOnB reports whether the row-matching phase should iterate over
// B's rows and binary-search into A, rather than the other way around.
// Always driving off the smaller row count keeps each worker's share of
// the binary-search fan-out small when one mesh has far fewer rows than
// the other. Whichever side drives, the recorded (idxA, idxB) pair for a
// matched row is corrected by the caller so later phases never need to
// know which side drove the match.
func DriveOnB(nA, nB int) bool {
	return nB < nA
}
