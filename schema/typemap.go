package schema

// TypeMap maps canonical column types to the native type names of one
// dialect. A provider owns a single TypeMap, populates it at
// construction, and treats it as read-only afterwards, so concurrent
// lookups need no synchronization.
type TypeMap struct {
	native map[Type]string
}

// NewTypeMap returns a TypeMap populated with the given entries.
func NewTypeMap(entries map[Type]string) *TypeMap {
	native := make(map[Type]string, len(entries))
	for t, name := range entries {
		native[t] = name
	}
	return &TypeMap{native: native}
}

// Native returns the native type name registered for t. The second
// return value reports whether an entry exists; a miss must be surfaced
// by the provider as an unsupported-type error, never silently degraded
// to a wrong type.
func (m *TypeMap) Native(t Type) (string, bool) {
	name, ok := m.native[t]
	return name, ok
}

// Types returns the canonical types that have a registered native name.
func (m *TypeMap) Types() []Type {
	ts := make([]Type, 0, len(m.native))
	for t := range m.native {
		ts = append(ts, t)
	}
	return ts
}
