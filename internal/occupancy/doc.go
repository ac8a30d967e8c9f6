// Package occupancy holds the date-range algebra behind the reservation calendar:
// merging per-night picks into stays, detecting overlaps between stays of the same
// room and counting nights.
//
// Every function is pure. Nothing is retained between calls, so the package is safe
// for concurrent use without locking. Checkout days are exclusive everywhere: a stay
// ending on D and another starting on D share a turnover day and do not conflict.
package occupancy
