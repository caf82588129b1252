package models

import "time"

// Overlaps reports whether two ranges conflict once each is expanded by the
// buffer on both ends. This predicate is the single source of truth for
// conflict detection: the availability index, the conflict resolver and the
// store implementations all call it.
//
//	not (A.End <= B.Start - buffer || A.Start >= B.End + buffer)
func Overlaps(a, b TimeRange, buffer time.Duration) bool {
	return !(a.End.Sub(b.Start) <= -buffer || a.Start.Sub(b.End) >= buffer)
}
