package resid

import (
	"testing"

	"github.com/fwilleke80/residcheck/internal/testutil"
)

func TestIndexKeepsDeclarationOrder(t *testing.T) {
	x := BuildIndex([]Declaration{
		{Name: "A", Value: 100, Line: 1},
		{Name: "B", Value: 100, Line: 2},
		{Name: "C", Value: 105, Line: 3},
	})

	testutil.Equal(t, 2, x.Len(), "distinct values")

	names := x.Names(100)
	testutil.Len(t, names, 2, "names under 100")
	testutil.Equal(t, "A", names[0], "first-seen name comes first")
	testutil.Equal(t, "B", names[1], "second name follows")
}

func TestIndexValuesAscending(t *testing.T) {
	x := NewIndex()
	x.Add("HIGH", 300)
	x.Add("LOW", 100)
	x.Add("MID", 200)

	vals := x.Values()
	testutil.Len(t, vals, 3, "values")
	testutil.Equal(t, 100, vals[0], "lowest first")
	testutil.Equal(t, 200, vals[1], "middle second")
	testutil.Equal(t, 300, vals[2], "highest last")
}

func TestIndexNamesReturnsCopy(t *testing.T) {
	x := NewIndex()
	x.Add("A", 100)

	names := x.Names(100)
	names[0] = "MUTATED"
	testutil.Equal(t, "A", x.Names(100)[0], "index must not observe caller mutation")
}

func TestCollisionsFlagSharedValuesOnly(t *testing.T) {
	x := BuildIndex([]Declaration{
		{Name: "A", Value: 100},
		{Name: "B", Value: 100},
		{Name: "C", Value: 105},
	})

	cols := x.Collisions()
	testutil.Len(t, cols, 1, "only one colliding value")
	testutil.Equal(t, 100, cols[0].Value, "value 100 collides")
	testutil.Len(t, cols[0].Names, 2, "both names reported")
	testutil.Equal(t, "A", cols[0].Names[0], "declaration order preserved")
	testutil.Equal(t, "B", cols[0].Names[1], "declaration order preserved")
}

func TestCollisionsAscendingByValue(t *testing.T) {
	x := NewIndex()
	x.Add("X1", 500)
	x.Add("X2", 500)
	x.Add("Y1", 200)
	x.Add("Y2", 200)

	cols := x.Collisions()
	testutil.Len(t, cols, 2, "two colliding values")
	testutil.Equal(t, 200, cols[0].Value, "lower value first")
	testutil.Equal(t, 500, cols[1].Value, "higher value second")
}

func TestCollisionsEmptyWhenUnique(t *testing.T) {
	x := BuildIndex([]Declaration{
		{Name: "A", Value: 100},
		{Name: "B", Value: 101},
	})
	testutil.Len(t, x.Collisions(), 0, "unique IDs yield no collisions")
}

func TestHeaderDelegatesToIndex(t *testing.T) {
	h := NewHeader("res/dialog.h", []Declaration{
		{Name: "A", Value: 100},
		{Name: "B", Value: 100},
	})

	testutil.Equal(t, "res/dialog.h", h.Path, "path kept")
	testutil.Len(t, h.Collisions(), 1, "collision visible through header")
	testutil.False(t, h.Index.Empty(), "index populated")
}
