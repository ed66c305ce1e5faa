package sidc

// entry binds one enumerated value (its fixed-width code) to a display label.
type entry[T ~string] struct {
	value T
	label string
}

// table is the immutable lookup structure behind each enumerated column.
// Order of entries is the canonical display order.
type table[T ~string] struct {
	entries []entry[T]
	def     T
	byKey   map[string]T
	labels  map[T]string
}

func newTable[T ~string](def T, entries ...entry[T]) *table[T] {
	t := &table[T]{
		entries: entries,
		def:     def,
		byKey:   make(map[string]T, len(entries)),
		labels:  make(map[T]string, len(entries)),
	}
	for _, e := range entries {
		t.byKey[Normalize(e.label)] = e.value
		t.labels[e.value] = e.label
	}
	return t
}

// parse looks up a free-text label. ok is false on a miss.
func (t *table[T]) parse(label string) (T, bool) {
	v, ok := t.byKey[Normalize(label)]
	return v, ok
}

// resolve looks up a free-text label and substitutes the default on a miss.
func (t *table[T]) resolve(label string) T {
	if v, ok := t.parse(label); ok {
		return v
	}
	return t.def
}

func (t *table[T]) label(v T) string {
	if l, ok := t.labels[v]; ok {
		return l
	}
	return "Unknown"
}

func (t *table[T]) valid(v T) bool {
	_, ok := t.labels[v]
	return ok
}

func (t *table[T]) values() []T {
	out := make([]T, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.value
	}
	return out
}
