package rules

import "sync"

// registry assembles the rule tables into one ordered, immutable list.
// Order matters: the interpreter takes the first rule whose predicates all
// hold, so more specific and conventional rules must precede the general
// natural ones they override. Opening rules come first (nothing else can
// apply before the auction is open), then the conventional responses
// (negative double, Jacoby 2NT, NT system) ahead of the natural responses
// and rebids they shadow, then competitive action and advances.
func registry() []Rule {
	var all []Rule
	all = append(all, openingRules...)
	all = append(all, ntSystemRules...)
	all = append(all, responseRules...)
	all = append(all, rebidRules...)
	all = append(all, competitiveRules...)
	all = append(all, advanceRules...)
	return all
}

// Registry is published once, lazily, on first use; the rule set is fixed
// at compile time so there is nothing to invalidate afterward.
var Registry = sync.OnceValue(registry)
