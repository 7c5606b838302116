package resid

// Reason explains why a value was suggested as a free ID.
type Reason int

const (
	// ReasonGap marks a value that fills a hole in the used ID range.
	ReasonGap Reason = iota
	// ReasonAfterLargest marks the value just past the largest used ID.
	ReasonAfterLargest
	// ReasonEmptyHeader marks the floor suggestion for a header with no IDs.
	ReasonEmptyHeader
)

func (r Reason) String() string {
	switch r {
	case ReasonGap:
		return "based on gap in ID range"
	case ReasonAfterLargest:
		return "after largest ID"
	case ReasonEmptyHeader:
		return "no IDs defined in header"
	default:
		return "unknown"
	}
}

// Suggestion is a free ID value that can be assigned without colliding
// with any indexed value.
type Suggestion struct {
	Value  int
	Reason Reason
}

// Suggestions returns free ID values: one per gap in the ascending used
// values, then one past the largest used value, never below floor. For an
// empty index the single suggestion is floor itself.
//
// The first sorted value never produces a gap suggestion; a gap needs a
// predecessor.
func (x *Index) Suggestions(floor int) []Suggestion {
	vals := x.Values()
	if len(vals) == 0 {
		return []Suggestion{{Value: floor, Reason: ReasonEmptyHeader}}
	}

	largest := 0
	var out []Suggestion
	for i, v := range vals {
		largest = max(largest, v)
		if i == 0 {
			continue
		}
		if v > vals[i-1]+1 {
			out = append(out, Suggestion{Value: vals[i-1] + 1, Reason: ReasonGap})
		}
	}
	out = append(out, Suggestion{Value: max(largest+1, floor), Reason: ReasonAfterLargest})
	return out
}
