package common

import "strconv"

// NewStem creates a Stem handing out names derived from stem that are not in
// namespace. The nil namespace is treated as a free namespace, meaning all
// names are available. Names handed out are added to namespace.
func NewStem(stem string, namespace map[string]struct{}) *Stem {
	return &Stem{
		taken: namespace,
		stem:  stem,
		last:  0,
	}
}

// Stem produces unique names of the form stem, stem2, stem3...
type Stem struct {
	taken map[string]struct{}
	stem  string
	last  int
}

// Next returns the next free name. The bare stem is tried first.
func (s *Stem) Next() string {
	if s.taken == nil {
		s.taken = make(map[string]struct{})
	}

	for {
		s.last++

		name := s.stem
		if s.last > 1 {
			name += strconv.Itoa(s.last)
		}

		if _, ok := s.taken[name]; !ok {
			s.taken[name] = struct{}{}
			return name
		}
	}
}
