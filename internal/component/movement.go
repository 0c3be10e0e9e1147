// internal/component/movement.go
package component

import "spelltower/pkg/gridmap"

// Position - компонент позиции в единицах симуляции (не пиксели).
type Position struct {
	X, Y float64
}

// Path - маршрут врага. Points - центры клеток Route; Index указывает на
// текущую целевую точку.
type Path struct {
	Route  gridmap.Route
	Points []Position
	Index  int
}

// NewPath builds the waypoint list of a route at the given cell size.
// The walker starts on the first waypoint heading for the second.
func NewPath(route gridmap.Route, cellSize float64) Path {
	points := make([]Position, len(route))
	for i, c := range route {
		x, y := c.Center(cellSize)
		points[i] = Position{X: x, Y: y}
	}
	return Path{Route: route, Points: points, Index: 1}
}

// Start returns the first waypoint.
func (p *Path) Start() Position {
	if len(p.Points) == 0 {
		return Position{}
	}
	return p.Points[0]
}

// Done reports whether the walker advanced past the final waypoint.
func (p *Path) Done() bool {
	return p.Index >= len(p.Points)
}
