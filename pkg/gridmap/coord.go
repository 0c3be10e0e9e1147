// pkg/gridmap/coord.go
package gridmap

import "math"

// Coord - клетка прямоугольной сетки. Comparable, так что годится как ключ map.
type Coord struct {
	X, Y int
}

// InBounds reports whether c lies in [0,width) x [0,height).
func (c Coord) InBounds(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// Adjacent reports whether c and o are 4-neighbors.
func (c Coord) Adjacent(o Coord) bool {
	return abs(c.X-o.X)+abs(c.Y-o.Y) == 1
}

// Distance - евклидово расстояние между центрами клеток.
func (c Coord) Distance(o Coord) float64 {
	return math.Hypot(float64(o.X-c.X), float64(o.Y-c.Y))
}

// Center returns the cell center in simulation units.
func (c Coord) Center(cellSize float64) (x, y float64) {
	return (float64(c.X) + 0.5) * cellSize, (float64(c.Y) + 0.5) * cellSize
}

// CoordAt returns the cell containing the point (x, y) given in simulation units.
func CoordAt(x, y, cellSize float64) Coord {
	return Coord{X: int(math.Floor(x / cellSize)), Y: int(math.Floor(y / cellSize))}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
