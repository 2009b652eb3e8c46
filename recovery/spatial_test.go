package recovery_test

import (
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quasitile/penrose"
	"github.com/katalvlaran/quasitile/recovery"
	"github.com/katalvlaran/quasitile/tile"
)

// TestDiskIndices_StrictInequality: a center exactly on the rim is not
// erased; strictly inside is.
func TestDiskIndices_StrictInequality(t *testing.T) {
	tiles := []tile.Tile{
		tile.NewAt(tile.Cell, [4]geom.Coord{}, geom.Coord{X: 10, Y: 0}), // on the rim
		tile.NewAt(tile.Cell, [4]geom.Coord{}, geom.Coord{X: 9, Y: 0}),  // inside
		tile.NewAt(tile.Cell, [4]geom.Coord{}, geom.Coord{X: 11, Y: 0}), // outside
	}

	got := recovery.DiskIndices(tiles, geom.Coord{}, 10)
	assert.Equal(t, []int{1}, got)
}

// TestBoundary_Annulus picks non-erased tiles whose centers fall inside
// [0.8r, 1.5r] and skips erased ones.
func TestBoundary_Annulus(t *testing.T) {
	at := func(x float64) tile.Tile {
		return tile.NewAt(tile.Cell, [4]geom.Coord{}, geom.Coord{X: x, Y: 0})
	}
	tiles := []tile.Tile{
		at(5),  // inside the erase disk, not boundary
		at(8),  // exactly on the inner rim
		at(12), // in the annulus but erased
		at(14), // in the annulus
		at(15), // exactly on the outer rim
		at(20), // beyond the annulus
	}
	erased := map[int]struct{}{2: {}}

	got := recovery.Boundary(tiles, erased, geom.Coord{}, 10, nil)
	assert.Equal(t, []int{1, 3, 4}, got)
}

// TestOrder_FarthestFirst checks the permutation contract and the
// non-increasing distance ordering.
func TestOrder_FarthestFirst(t *testing.T) {
	at := func(x, y float64) tile.Tile {
		return tile.NewAt(tile.Cell, [4]geom.Coord{}, geom.Coord{X: x, Y: y})
	}
	tiles := []tile.Tile{at(1, 0), at(5, 0), at(3, 0), at(0, 4), at(2, 0)}
	erased := []int{0, 1, 2, 3, 4}
	center := geom.Coord{}

	got := recovery.Order(tiles, erased, center)

	assert.ElementsMatch(t, erased, got, "must be a permutation of the input")
	assert.Equal(t, []int{0, 1, 2, 3, 4}, erased, "input slice must not be mutated")
	for i := 1; i < len(got); i++ {
		prev := tiles[got[i-1]].Center.DistanceFrom(center)
		curr := tiles[got[i]].Center.DistanceFrom(center)
		assert.GreaterOrEqual(t, prev, curr, "distances must be non-increasing")
	}
	assert.Equal(t, []int{1, 3, 2, 4, 0}, got)
}

// TestOrder_StableTies keeps input order for equidistant tiles.
func TestOrder_StableTies(t *testing.T) {
	at := func(x, y float64) tile.Tile {
		return tile.NewAt(tile.Cell, [4]geom.Coord{}, geom.Coord{X: x, Y: y})
	}
	tiles := []tile.Tile{at(3, 0), at(0, 3), at(-3, 0)}

	got := recovery.Order(tiles, []int{0, 1, 2}, geom.Coord{})
	assert.Equal(t, []int{0, 1, 2}, got)
}

// TestOrder_Empty yields an empty order.
func TestOrder_Empty(t *testing.T) {
	got := recovery.Order(nil, nil, geom.Coord{})
	assert.Empty(t, got)
}

// TestNeighbors_SharedEdge is the hand-constructed scenario: two squares
// sharing the edge (0,0)–(1,0) see each other; a third square touching only
// the corner (1,1) is no one's neighbor.
func TestNeighbors_SharedEdge(t *testing.T) {
	a := square(0, 0)  // (0,0)(1,0)(1,1)(0,1)
	b := square(0, -1) // shares (0,0) and (1,0) with a
	c := square(1, 1)  // shares only (1,1) with a
	tiles := []tile.Tile{a, b, c}

	na, err := recovery.Neighbors(0, tiles, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, na, "a's only edge neighbor is b")

	nb, err := recovery.Neighbors(1, tiles, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, nb, "adjacency is symmetric")

	nc, err := recovery.Neighbors(2, tiles, nil)
	require.NoError(t, err)
	assert.Empty(t, nc, "one shared vertex is not an edge")
}

// TestNeighbors_Tolerance matches vertices that only almost coincide.
func TestNeighbors_Tolerance(t *testing.T) {
	a := square(0, 0)
	b := tile.New(tile.Cell, [4]geom.Coord{
		{X: 0.4, Y: -0.3}, {X: 1.4, Y: -0.3}, {X: 1.4, Y: -1.3}, {X: 0.4, Y: -1.3},
	}) // top edge within 0.5 of a's bottom edge

	got, err := recovery.Neighbors(0, []tile.Tile{a, b}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got, "vertices within the 1.0 tolerance must match")

	opts := recovery.DefaultOptions()
	opts.VertexTolerance = 0.1
	got, err = recovery.Neighbors(0, []tile.Tile{a, b}, &opts)
	require.NoError(t, err)
	assert.Empty(t, got, "a tighter tolerance must reject the same pair")
}

// TestNeighbors_OutOfRange rejects invalid targets.
func TestNeighbors_OutOfRange(t *testing.T) {
	tiles := []tile.Tile{square(0, 0)}

	_, err := recovery.Neighbors(1, tiles, nil)
	assert.ErrorIs(t, err, recovery.ErrIndexOutOfRange)
	_, err = recovery.Neighbors(-1, tiles, nil)
	assert.ErrorIs(t, err, recovery.ErrIndexOutOfRange)
}

// TestNeighbors_PenrosePatch sanity-checks adjacency on a real patch: every
// interior tile of a rhombus tiling has at least one edge neighbor, and no
// tile reports itself.
func TestNeighbors_PenrosePatch(t *testing.T) {
	tiles, err := penrose.Generate(400, 300, 5, nil)
	require.NoError(t, err)
	require.NotEmpty(t, tiles)

	center := geom.Coord{X: 200, Y: 150}
	for i := range tiles {
		if tiles[i].Center.DistanceFrom(center) > 100 {
			continue // stay clear of the culled border
		}
		ns, err := recovery.Neighbors(i, tiles, nil)
		require.NoError(t, err)
		assert.NotEmpty(t, ns, "interior tile %d must have edge neighbors", i)
		assert.NotContains(t, ns, i, "a tile is not its own neighbor")
	}
}
