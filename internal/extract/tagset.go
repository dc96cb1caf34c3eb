package extract

// TagSet is an insertion-ordered name-to-value map. Overwriting keeps the
// original position so composed blocks stay stable.
type TagSet struct {
	names  []string
	values map[string]any
}

// NewTagSet returns an empty set.
func NewTagSet() *TagSet {
	return &TagSet{values: map[string]any{}}
}

// Get returns the value recorded for name.
func (s *TagSet) Get(name string) (any, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Set records or overwrites a value.
func (s *TagSet) Set(name string, value any) {
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}
	s.values[name] = value
}

// Delete removes a name, preserving the order of the rest.
func (s *TagSet) Delete(name string) {
	if _, ok := s.values[name]; !ok {
		return
	}
	delete(s.values, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
}

// Names returns the tag names in insertion order.
func (s *TagSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len reports the number of recorded tags.
func (s *TagSet) Len() int { return len(s.names) }

// Clone returns an independent copy.
func (s *TagSet) Clone() *TagSet {
	clone := &TagSet{
		names:  make([]string, len(s.names)),
		values: make(map[string]any, len(s.values)),
	}
	copy(clone.names, s.names)
	for k, v := range s.values {
		clone.values[k] = v
	}
	return clone
}
