// Package resid defines the resource-ID model and the analysis run over a
// parsed header: value collisions, free-value suggestions, and blocks of
// consecutively used values.
package resid

// Declaration is one NAME=VALUE pair extracted from a header line.
type Declaration struct {
	Name  string
	Value int
	Line  int // 1-based source line, 0 if unknown
}

// Header holds the analysis unit for a single resource header file.
// Nothing in a Header outlives the file it was built from; there is no
// cross-file aggregation.
type Header struct {
	Path  string
	Decls []Declaration
	Index *Index
}

// NewHeader builds a Header with its value index from parsed declarations.
func NewHeader(path string, decls []Declaration) *Header {
	return &Header{
		Path:  path,
		Decls: decls,
		Index: BuildIndex(decls),
	}
}

// Collisions reports every value declared under more than one name.
func (h *Header) Collisions() []Collision { return h.Index.Collisions() }

// Suggestions reports free ID values, gaps first, then after the largest.
func (h *Header) Suggestions(floor int) []Suggestion { return h.Index.Suggestions(floor) }

// Blocks reports maximal runs of consecutively used values.
func (h *Header) Blocks() []Block { return h.Index.Blocks() }
