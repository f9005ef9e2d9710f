package recon

// lookupTable is an insertion-ordered string-keyed map.
//
// Put on an existing key replaces the value but keeps the key at its first
// insertion position, so a source that lists the same IP twice resolves to
// the last line (last write wins) while Keys still reflects first sighting.
type lookupTable[V any] struct {
	keys   []string
	values map[string]V
}

func newLookupTable[V any](capacity int) *lookupTable[V] {
	return &lookupTable[V]{
		keys:   make([]string, 0, capacity),
		values: make(map[string]V, capacity),
	}
}

// Put stores v under key. It reports whether an earlier value was replaced.
func (t *lookupTable[V]) Put(key string, v V) (replaced bool) {
	if _, ok := t.values[key]; ok {
		replaced = true
	} else {
		t.keys = append(t.keys, key)
	}
	t.values[key] = v
	return replaced
}

// Get is an exact-match lookup.
func (t *lookupTable[V]) Get(key string) (V, bool) {
	v, ok := t.values[key]
	return v, ok
}

func (t *lookupTable[V]) Len() int {
	return len(t.keys)
}

// Keys returns keys in first-insertion order.
func (t *lookupTable[V]) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}
