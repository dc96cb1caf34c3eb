package document

import "substation/internal/fields"

// ExtraFields holds columns that fall outside the fixed schema. Keys are
// looked up in normalized form but re-emit under the spelling the source
// declared.
type ExtraFields struct {
	order  []string
	casing map[string]string
	values map[string]string
}

// NewExtraFields returns an empty collection.
func NewExtraFields() *ExtraFields {
	return &ExtraFields{
		casing: map[string]string{},
		values: map[string]string{},
	}
}

// Set records a value under the field's declared name.
func (e *ExtraFields) Set(name, value string) {
	key := fields.Normalize(name)
	if _, ok := e.values[key]; !ok {
		e.order = append(e.order, key)
	}
	e.casing[key] = name
	e.values[key] = value
}

// Get looks a value up by any casing of the field name.
func (e *ExtraFields) Get(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	v, ok := e.values[fields.Normalize(name)]
	return v, ok
}

// Names returns the declared field names in insertion order.
func (e *ExtraFields) Names() []string {
	if e == nil {
		return nil
	}
	out := make([]string, len(e.order))
	for i, key := range e.order {
		out[i] = e.casing[key]
	}
	return out
}

// Len reports the number of extra fields.
func (e *ExtraFields) Len() int {
	if e == nil {
		return 0
	}
	return len(e.order)
}
