package resid

// Block is a maximal run of consecutively used ID values.
type Block struct {
	Values []int // ascending
}

// First returns the lowest value in the block.
func (b Block) First() int { return b.Values[0] }

// Last returns the highest value in the block.
func (b Block) Last() int { return b.Values[len(b.Values)-1] }

// Len returns the number of values in the block.
func (b Block) Len() int { return len(b.Values) }

// Blocks partitions the ascending used values into maximal runs where each
// element is the previous plus one.
func (x *Index) Blocks() []Block {
	vals := x.Values()
	if len(vals) == 0 {
		return nil
	}

	var out []Block
	run := []int{vals[0]}
	for _, v := range vals[1:] {
		if v == run[len(run)-1]+1 {
			run = append(run, v)
			continue
		}
		out = append(out, Block{Values: run})
		run = []int{v}
	}
	out = append(out, Block{Values: run})
	return out
}
