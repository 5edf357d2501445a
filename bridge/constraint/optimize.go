package constraint

import "github.com/lox/bridgebid/bridge/domain"

// Optimize coalesces a constraint list to an equivalent, smaller one: all
// MinHcp/MaxHcp constraints collapse to the single tightest bound of each
// kind, and all per-suit MinLength/MaxLength constraints collapse to the
// tightest bound per suit. Every other variant passes through unchanged,
// in its original relative order. The result is semantically equivalent:
// a hand satisfies every constraint in the input iff it satisfies every
// constraint in the output.
func Optimize(cs []Constraint) []Constraint {
	var (
		haveMinHcp, haveMaxHcp     bool
		minHcp, maxHcp             int
		minLen, maxLen             [4]int
		haveMinLen, haveMaxLen     [4]bool
		passthrough                []Constraint
	)

	for _, c := range cs {
		switch c.Kind {
		case MinHcp:
			if !haveMinHcp || c.N > minHcp {
				minHcp = c.N
			}
			haveMinHcp = true
		case MaxHcp:
			if !haveMaxHcp || c.N < maxHcp {
				maxHcp = c.N
			}
			haveMaxHcp = true
		case MinLength:
			if !haveMinLen[c.Suit] || c.N > minLen[c.Suit] {
				minLen[c.Suit] = c.N
			}
			haveMinLen[c.Suit] = true
		case MaxLength:
			if !haveMaxLen[c.Suit] || c.N < maxLen[c.Suit] {
				maxLen[c.Suit] = c.N
			}
			haveMaxLen[c.Suit] = true
		default:
			passthrough = append(passthrough, c)
		}
	}

	out := make([]Constraint, 0, len(passthrough)+10)
	if haveMinHcp {
		out = append(out, NewMinHcp(minHcp))
	}
	if haveMaxHcp {
		out = append(out, NewMaxHcp(maxHcp))
	}
	for _, s := range domain.Suits {
		if haveMinLen[s] {
			out = append(out, NewMinLength(s, minLen[s]))
		}
		if haveMaxLen[s] {
			out = append(out, NewMaxLength(s, maxLen[s]))
		}
	}
	out = append(out, passthrough...)
	return out
}

// CheckAll reports whether hand h satisfies every constraint in cs.
func CheckAll(cs []Constraint, h domain.Hand) bool {
	for _, c := range cs {
		if !c.Check(h) {
			return false
		}
	}
	return true
}

// Failing returns the subset of cs that h does not satisfy, preserving
// order; used to build selector traces.
func Failing(cs []Constraint, h domain.Hand) []Constraint {
	var out []Constraint
	for _, c := range cs {
		if !c.Check(h) {
			out = append(out, c)
		}
	}
	return out
}
