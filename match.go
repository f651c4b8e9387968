package guard

// Matches reports whether err's class is one of the given classes or a
// subclass of one. It is the set-form matching every guard is built on.
//
// It returns false when err is nil, when no error on err's chain carries a
// class, and when no classes are given. nil entries are ignored.
//
// Example:
//
//	if guard.Matches(err, guard.ClassTransient) {
//	    // Covers TIMEOUT, SERVICE_UNAVAILABLE, RATE_LIMIT_EXCEEDED
//	}
func Matches(err error, classes ...*Class) bool {
	c := ClassOf(err)
	if c == nil {
		return false
	}
	for _, want := range classes {
		if want != nil && c.Is(want) {
			return true
		}
	}
	return false
}

// Rule maps one matched class to its replacement.
type Rule struct {
	Match   *Class
	Replace *Class
}

// Rules is an ordered list of replacement rules. Order is authoritative:
// the first rule that matches wins, so a subclass rule must be listed
// before its ancestor's rule to be reachable.
type Rules []Rule

// Resolve returns the replacement class of the first rule matching err, in
// declaration order. The second result is false when err is nil, carries no
// class, or matches no rule. Rules with a nil side never match.
func (rs Rules) Resolve(err error) (*Class, bool) {
	c := ClassOf(err)
	if c == nil {
		return nil, false
	}
	for _, r := range rs {
		if r.Match == nil || r.Replace == nil {
			continue
		}
		if c.Is(r.Match) {
			return r.Replace, true
		}
	}
	return nil, false
}
