package domain

// Vulnerability records which partnerships are vulnerable.
type Vulnerability uint8

const (
	VulnNone Vulnerability = iota
	VulnNS
	VulnEW
	VulnBoth
)

// IsVulnerable reports whether pt is vulnerable under v.
func (v Vulnerability) IsVulnerable(pt Partnership) bool {
	switch v {
	case VulnBoth:
		return true
	case VulnNS:
		return pt == NorthSouth
	case VulnEW:
		return pt == EastWest
	default:
		return false
	}
}

// String renders the vulnerability as used in identifier strings.
func (v Vulnerability) String() string {
	switch v {
	case VulnNone:
		return "None"
	case VulnNS:
		return "NS"
	case VulnEW:
		return "EW"
	case VulnBoth:
		return "Both"
	default:
		return "?"
	}
}

// vulnerabilityByBoardMod16 is the fixed table mapping board-number mod 16
// to the vulnerability in force for that board.
var vulnerabilityByBoardMod16 = [16]Vulnerability{
	0:  VulnEW,
	1:  VulnNone,
	2:  VulnNS,
	3:  VulnEW,
	4:  VulnBoth,
	5:  VulnNS,
	6:  VulnEW,
	7:  VulnBoth,
	8:  VulnNone,
	9:  VulnEW,
	10: VulnBoth,
	11: VulnNone,
	12: VulnNS,
	13: VulnBoth,
	14: VulnNone,
	15: VulnNS,
}

// VulnerabilityForBoard derives vulnerability from a board number per the
// standard duplicate rotation.
func VulnerabilityForBoard(boardNumber int) Vulnerability {
	m := ((boardNumber % 16) + 16) % 16
	return vulnerabilityByBoardMod16[m]
}

// DealerForBoard derives the dealer from a board number: (n+3) mod 4, with
// 0 => North.
func DealerForBoard(boardNumber int) Position {
	idx := ((boardNumber+3)%4 + 4) % 4
	return Position(idx)
}

// ParseVulnerability parses the canonical vulnerability tokens used by
// identifier strings ("None", "NS", "EW", "Both"). Only the spellings listed
// in the switch below are accepted: those four, a few lower/upper-case
// forms, and the aliases "O" and "-" (None) and "All"/"all" (Both).
func ParseVulnerability(s string) (Vulnerability, bool) {
	switch s {
	case "None", "none", "NONE", "O", "-":
		return VulnNone, true
	case "NS", "ns":
		return VulnNS, true
	case "EW", "ew":
		return VulnEW, true
	case "Both", "both", "BOTH", "All", "all":
		return VulnBoth, true
	default:
		return 0, false
	}
}
