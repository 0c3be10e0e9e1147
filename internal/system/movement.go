// internal/system/movement.go
package system

import (
	"spelltower/internal/entity"
	"spelltower/internal/utils"
)

// MovementSystem двигает живых врагов по их маршрутам.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

// Update moves every live enemy toward its current waypoint. Under reversal
// the enemy heads for the previous waypoint and steps the index back on
// arrival; otherwise arrival advances the index.
func (s *MovementSystem) Update(deltaTime float64) {
	for _, e := range s.ecs.Enemies {
		if !e.Alive || e.ReachedEnd() {
			continue
		}
		path := &e.Path
		reversing := e.Status.Reversed() && path.Index > 0

		target := path.Points[path.Index]
		if reversing {
			target = path.Points[path.Index-1]
		}

		x, y, arrived := utils.MoveToward(e.X, e.Y, target.X, target.Y, e.Speed()*deltaTime)
		e.X, e.Y = x, y
		if !arrived {
			continue
		}
		if reversing {
			path.Index--
		} else {
			path.Index++
		}
	}
}
