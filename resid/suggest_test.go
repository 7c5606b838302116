package resid

import (
	"testing"

	"github.com/fwilleke80/residcheck/internal/testutil"
)

func indexOf(values ...int) *Index {
	x := NewIndex()
	for i, v := range values {
		x.Add(name(i), v)
	}
	return x
}

func name(i int) string {
	return string(rune('A' + i))
}

func TestSuggestionsFillGapsThenExtend(t *testing.T) {
	x := indexOf(100, 101, 102, 105, 110)

	sugs := x.Suggestions(100)
	testutil.Len(t, sugs, 3, "two gaps plus after-largest")

	testutil.Equal(t, 103, sugs[0].Value, "first gap")
	testutil.Equal(t, ReasonGap, sugs[0].Reason, "first gap reason")
	testutil.Equal(t, 106, sugs[1].Value, "second gap")
	testutil.Equal(t, ReasonGap, sugs[1].Reason, "second gap reason")
	testutil.Equal(t, 111, sugs[2].Value, "after largest")
	testutil.Equal(t, ReasonAfterLargest, sugs[2].Reason, "after-largest reason")
}

func TestSuggestionsEmptyIndexUsesFloor(t *testing.T) {
	x := NewIndex()

	sugs := x.Suggestions(1000)
	testutil.Len(t, sugs, 1, "single floor suggestion")
	testutil.Equal(t, 1000, sugs[0].Value, "floor value")
	testutil.Equal(t, ReasonEmptyHeader, sugs[0].Reason, "empty-header reason")
}

func TestSuggestionsNoGaps(t *testing.T) {
	x := indexOf(100, 101, 102)

	sugs := x.Suggestions(100)
	testutil.Len(t, sugs, 1, "only after-largest")
	testutil.Equal(t, 103, sugs[0].Value, "largest plus one")
	testutil.Equal(t, ReasonAfterLargest, sugs[0].Reason, "after-largest reason")
}

func TestSuggestionsSingleValueNeverGaps(t *testing.T) {
	// The lone first value has no predecessor; it must not produce a gap
	// marker regardless of its magnitude.
	x := indexOf(5000)

	sugs := x.Suggestions(100)
	testutil.Len(t, sugs, 1, "no gap from the first value")
	testutil.Equal(t, 5001, sugs[0].Value, "largest plus one")
}

func TestSuggestionsFloorRaisesFinal(t *testing.T) {
	x := indexOf(100, 105)

	sugs := x.Suggestions(500)
	testutil.Len(t, sugs, 2, "gap plus final")
	testutil.Equal(t, 101, sugs[0].Value, "gap fill unaffected by floor")
	testutil.Equal(t, 500, sugs[1].Value, "final raised to floor")
}

func TestReasonStrings(t *testing.T) {
	testutil.Equal(t, "based on gap in ID range", ReasonGap.String(), "gap text")
	testutil.Equal(t, "after largest ID", ReasonAfterLargest.String(), "after-largest text")
	testutil.Equal(t, "no IDs defined in header", ReasonEmptyHeader.String(), "empty text")
}
