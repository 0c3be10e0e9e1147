package gridmap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand replays scripted draws; once exhausted it always returns the last one.
type fixedRand struct {
	floats []float64
	ints   []int
}

func (r *fixedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return v
}

func (r *fixedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	if len(r.ints) > 1 {
		r.ints = r.ints[1:]
	}
	return v % n
}

func TestGenerate_RoutesAreValidForManySeeds(t *testing.T) {
	for seed := int64(1); seed <= 500; seed++ {
		rng := rand.New(rand.NewSource(seed))
		gen := NewPathGenerator(10, 10, rng)
		route := gen.Generate()

		require.NotEmpty(t, route, "seed %d", seed)
		require.NoError(t, route.Validate(10, 10), "seed %d", seed)
		assert.Equal(t, Coord{0, 5}, route[0], "seed %d", seed)
		assert.LessOrEqual(t, len(route), 10*10, "seed %d", seed)
	}
}

func TestGenerate_NonSquareGrids(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {3, 12}, {20, 4}}
	for _, sz := range sizes {
		for seed := int64(1); seed <= 50; seed++ {
			gen := NewPathGenerator(sz[0], sz[1], rand.New(rand.NewSource(seed)))
			route := gen.Generate()
			require.NoError(t, route.Validate(sz[0], sz[1]), "size %v seed %d", sz, seed)
			assert.LessOrEqual(t, len(route), sz[0]*sz[1])
		}
	}
}

func TestGenerate_GreedyWalkReachesExitInStraightLine(t *testing.T) {
	// exit row drawn as 5 and no random deviations: the walk is a straight line
	rng := &fixedRand{ints: []int{5}, floats: []float64{0.99}}
	route := NewPathGenerator(6, 10, rng).Generate()

	require.Len(t, route, 6)
	for x, c := range route {
		assert.Equal(t, Coord{x, 5}, c)
	}
}

func TestGenerate_EndsOnLastColumnWhenComplete(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		route := NewPathGenerator(10, 10, rand.New(rand.NewSource(seed))).Generate()
		last, ok := route.Last()
		require.True(t, ok)
		if last.X == 9 {
			continue
		}
		// only a circuit-breaker route may stop short of the last column
		assert.Less(t, last.X, 9)
	}
}

func TestGenerate_DegenerateGrid(t *testing.T) {
	assert.Nil(t, NewPathGenerator(0, 5, rand.New(rand.NewSource(1))).Generate())
}

func TestRoute_Validate(t *testing.T) {
	assert.NoError(t, Route{{0, 0}, {1, 0}, {1, 1}}.Validate(3, 3))
	assert.Error(t, Route{{0, 0}, {1, 1}}.Validate(3, 3), "diagonal")
	assert.Error(t, Route{{0, 0}, {1, 0}, {0, 0}}.Validate(3, 3), "repeat")
	assert.Error(t, Route{{0, 0}, {-1, 0}}.Validate(3, 3), "bounds")
	assert.Error(t, Route{}.Validate(3, 3), "empty")
}

func TestRouteSet_Contains(t *testing.T) {
	rs := RouteSet{{{0, 0}, {1, 0}}, {{0, 2}, {1, 2}}}
	assert.True(t, rs.Contains(Coord{1, 2}))
	assert.False(t, rs.Contains(Coord{1, 1}))
}

func TestCoord_CenterAndCoordAt(t *testing.T) {
	x, y := Coord{2, 3}.Center(10)
	assert.Equal(t, 25.0, x)
	assert.Equal(t, 35.0, y)
	assert.Equal(t, Coord{2, 3}, CoordAt(x, y, 10))
}
