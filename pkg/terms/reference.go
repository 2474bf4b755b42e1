package terms

// ReferenceSet keeps synonym/identifier pairs already present in the
// knowledge base.
type ReferenceSet struct {
	pairs map[Pair]struct{}
}

// NewReferenceSet creates an empty ReferenceSet.
func NewReferenceSet() *ReferenceSet {
	return &ReferenceSet{pairs: make(map[Pair]struct{})}
}

// Add puts a pair into the set.
func (s *ReferenceSet) Add(synonym, identifier string) {
	s.pairs[Pair{Synonym: synonym, Identifier: identifier}] = struct{}{}
}

// Has reports whether the pair is in the set.
func (s *ReferenceSet) Has(p Pair) bool {
	_, ok := s.pairs[p]
	return ok
}

// Len returns the number of distinct pairs.
func (s *ReferenceSet) Len() int {
	return len(s.pairs)
}

// Filter returns records whose pair is absent from the set, keeping
// their order. The input slice is not modified.
func Filter(records []Record, set *ReferenceSet) []Record {
	res := make([]Record, 0, len(records))
	for _, v := range records {
		if set.Has(v.Pair()) {
			continue
		}
		res = append(res, v)
	}
	return res
}
