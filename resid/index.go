package resid

import "slices"

// Index maps each ID value to the names declared with it.
// Names under a value keep declaration order (first seen first).
// Build it once per file; treat it as read-only once analysis starts.
type Index struct {
	names map[int][]string
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{names: make(map[int][]string)}
}

// BuildIndex aggregates declarations into an Index.
func BuildIndex(decls []Declaration) *Index {
	x := NewIndex()
	for _, d := range decls {
		x.Add(d.Name, d.Value)
	}
	return x
}

// Add records a name under a value, appending after any earlier names.
func (x *Index) Add(name string, value int) {
	x.names[value] = append(x.names[value], name)
}

// Len returns the number of distinct values in the index.
func (x *Index) Len() int { return len(x.names) }

// Empty returns true if no declarations were indexed.
func (x *Index) Empty() bool { return len(x.names) == 0 }

// Values returns all indexed values in ascending order.
func (x *Index) Values() []int {
	vals := make([]int, 0, len(x.names))
	for v := range x.names {
		vals = append(vals, v)
	}
	slices.Sort(vals)
	return vals
}

// Names returns the names declared with the given value, in declaration
// order. The returned slice is a copy.
func (x *Index) Names(value int) []string {
	return slices.Clone(x.names[value])
}
