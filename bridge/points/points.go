// Package points holds the fixed combined-point and zone constants used
// throughout the bidding arithmetic: the suited-bid and notrump
// combined-point thresholds by contract level, the named zone thresholds,
// and the support-raise thresholds.
package points

// SuitedThreshold is the combined-partnership-point threshold to bid a
// suited contract at the given level (index 1..7; index 0 unused).
var SuitedThreshold = [8]int{0, 16, 19, 22, 25, 28, 33, 37}

// NotrumpThreshold is the combined-partnership-point threshold to bid a
// notrump contract at the given level.
var NotrumpThreshold = [8]int{0, 19, 22, 25, 28, 30, 33, 37}

// SupportRaiseThreshold is the combined-point threshold for a support
// raise reaching the given level.
var SupportRaiseThreshold = [8]int{0, 18, 18, 22, 25, 28, 33, 37}

// Zone thresholds, in combined partnership points.
const (
	Game      = 25
	Slam      = 33
	GrandSlam = 37
)
