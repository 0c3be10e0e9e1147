// pkg/gridmap/route.go
package gridmap

import (
	"errors"
	"fmt"
)

// Route is an ordered walk of unique, 4-adjacent cells from the entry toward the exit.
type Route []Coord

// Contains reports whether c is one of the route's cells.
func (r Route) Contains(c Coord) bool {
	for _, rc := range r {
		if rc == c {
			return true
		}
	}
	return false
}

// Entry returns the first cell of the route.
func (r Route) Entry() (Coord, bool) {
	if len(r) == 0 {
		return Coord{}, false
	}
	return r[0], true
}

// Last returns the final reachable cell of the route.
func (r Route) Last() (Coord, bool) {
	if len(r) == 0 {
		return Coord{}, false
	}
	return r[len(r)-1], true
}

// Validate checks bounds, adjacency and uniqueness.
func (r Route) Validate(width, height int) error {
	if len(r) == 0 {
		return errors.New("route is empty")
	}
	seen := make(map[Coord]struct{}, len(r))
	for i, c := range r {
		if !c.InBounds(width, height) {
			return fmt.Errorf("route cell %d %v out of bounds %dx%d", i, c, width, height)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("route cell %d %v repeats", i, c)
		}
		seen[c] = struct{}{}
		if i > 0 && !r[i-1].Adjacent(c) {
			return fmt.Errorf("route cells %d %v and %d %v are not adjacent", i-1, r[i-1], i, c)
		}
	}
	return nil
}

// RouteSet - все маршруты на карте; используется для проверки занятости клеток.
type RouteSet []Route

// Contains reports whether any route passes through c.
func (rs RouteSet) Contains(c Coord) bool {
	for _, r := range rs {
		if r.Contains(c) {
			return true
		}
	}
	return false
}
