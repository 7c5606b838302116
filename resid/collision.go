package resid

// Collision is a value declared under two or more names.
type Collision struct {
	Value int
	Names []string // declaration order
}

// Collisions returns every value with more than one name, ascending by
// value. An empty result means all indexed IDs are unique.
func (x *Index) Collisions() []Collision {
	var out []Collision
	for _, v := range x.Values() {
		names := x.Names(v)
		if len(names) > 1 {
			out = append(out, Collision{Value: v, Names: names})
		}
	}
	return out
}
