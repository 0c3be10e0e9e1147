// pkg/gridmap/path.go
package gridmap

import "sort"

// Rand is the subset of a random source the generator needs.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// SecondChoiceChance is the probability of taking the second-closest candidate.
const SecondChoiceChance = 0.3

// PathGenerator builds one walkable route across a width x height grid.
type PathGenerator struct {
	Width  int
	Height int
	rng    Rand
}

// NewPathGenerator создаёт генератор для сетки заданного размера.
func NewPathGenerator(width, height int, rng Rand) *PathGenerator {
	return &PathGenerator{Width: width, Height: height, rng: rng}
}

// Entry is the fixed entry cell (0, height/2).
func (g *PathGenerator) Entry() Coord {
	return Coord{X: 0, Y: g.Height / 2}
}

// Generate runs a greedy biased random walk from the entry to a random exit on
// the last column. Candidates are +x, -y and +y moves sorted by distance to the
// exit. Stepping back onto a cell already on the route erases the loop, so the
// route stays a simple 4-adjacent walk. The walk stops at the exit or once it
// has taken more than width*height steps; in that case the route is returned
// as is and may end short of the exit.
func (g *PathGenerator) Generate() Route {
	if g.Width <= 0 || g.Height <= 0 {
		return nil
	}
	exit := Coord{X: g.Width - 1, Y: g.rng.Intn(g.Height)}
	current := g.Entry()
	route := Route{current}
	index := map[Coord]int{current: 0}
	limit := g.Width * g.Height

	for steps := 0; current != exit; steps++ {
		if steps >= limit {
			break
		}
		candidates := g.candidates(current)
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Distance(exit) < candidates[j].Distance(exit)
		})
		next := candidates[0]
		if len(candidates) > 1 && g.rng.Float64() < SecondChoiceChance {
			next = candidates[g.rng.Intn(2)]
		}
		current = next
		if i, seen := index[current]; seen {
			for _, c := range route[i+1:] {
				delete(index, c)
			}
			route = route[:i+1]
			continue
		}
		index[current] = len(route)
		route = append(route, current)
	}
	return route
}

func (g *PathGenerator) candidates(c Coord) []Coord {
	out := make([]Coord, 0, 3)
	for _, n := range []Coord{{c.X + 1, c.Y}, {c.X, c.Y - 1}, {c.X, c.Y + 1}} {
		if n.InBounds(g.Width, g.Height) {
			out = append(out, n)
		}
	}
	return out
}
