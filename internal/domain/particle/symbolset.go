package particle

import "sort"

// SymbolSet is an immutable set of particle symbols.
// Every operation returns a new set; the zero value is a valid empty set.
type SymbolSet struct {
	members map[string]struct{}
}

// NewSymbolSet creates a set from the given symbols. Duplicates collapse.
func NewSymbolSet(symbols ...string) SymbolSet {
	members := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		members[s] = struct{}{}
	}
	return SymbolSet{members: members}
}

// Contains reports whether symbol is a member.
func (s SymbolSet) Contains(symbol string) bool {
	_, ok := s.members[symbol]
	return ok
}

// Len returns the number of members.
func (s SymbolSet) Len() int {
	return len(s.members)
}

// IsEmpty reports whether the set has no members.
func (s SymbolSet) IsEmpty() bool {
	return len(s.members) == 0
}

// Symbols returns the members sorted alphabetically. The slice is a copy.
func (s SymbolSet) Symbols() []string {
	out := make([]string, 0, len(s.members))
	for m := range s.members {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Union returns s ∪ others.
func (s SymbolSet) Union(others ...SymbolSet) SymbolSet {
	size := len(s.members)
	for _, o := range others {
		size += len(o.members)
	}
	members := make(map[string]struct{}, size)
	for m := range s.members {
		members[m] = struct{}{}
	}
	for _, o := range others {
		for m := range o.members {
			members[m] = struct{}{}
		}
	}
	return SymbolSet{members: members}
}

// Intersect returns s ∩ other.
func (s SymbolSet) Intersect(other SymbolSet) SymbolSet {
	return s.Filter(other.Contains)
}

// Filter returns the members for which keep returns true.
func (s SymbolSet) Filter(keep func(symbol string) bool) SymbolSet {
	members := make(map[string]struct{})
	for m := range s.members {
		if keep(m) {
			members[m] = struct{}{}
		}
	}
	return SymbolSet{members: members}
}

// SubsetOf reports whether every member of s is in other.
func (s SymbolSet) SubsetOf(other SymbolSet) bool {
	for m := range s.members {
		if !other.Contains(m) {
			return false
		}
	}
	return true
}

// Disjoint reports whether s and other share no members.
func (s SymbolSet) Disjoint(other SymbolSet) bool {
	for m := range s.members {
		if other.Contains(m) {
			return false
		}
	}
	return true
}

// Equal reports whether both sets have exactly the same members.
func (s SymbolSet) Equal(other SymbolSet) bool {
	return s.Len() == other.Len() && s.SubsetOf(other)
}
