package sentence

import "iter"

// Metadata holds the "# key = value" comments of a sentence in the order
// they were first seen.
type Metadata struct {
	keys   []string
	values map[string]string
}

func NewMetadata() *Metadata {
	return &Metadata{values: map[string]string{}}
}

// Set stores value under key. A key that already exists keeps its
// position.
func (m *Metadata) Set(key, value string) {
	if m.values == nil {
		m.values = map[string]string{}
	}

	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

func (m *Metadata) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Metadata) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}

	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns a copy of the keys in order.
func (m *Metadata) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

func (m *Metadata) Len() int {
	return len(m.keys)
}

// All iterates over the pairs in order.
func (m *Metadata) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}
