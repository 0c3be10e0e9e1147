// internal/system/status_effect.go
package system

import "spelltower/internal/entity"

// StatusEffectSystem отсчитывает таймеры статусов и наносит урон от яда.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// Update обрабатывает все активные эффекты живых врагов.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for _, e := range s.ecs.Enemies {
		if !e.Alive {
			continue
		}
		st := &e.Status

		if st.ReverseTimer > 0 {
			st.ReverseTimer -= deltaTime
			if st.ReverseTimer < 0 {
				st.ReverseTimer = 0
			}
		}

		if st.SlowTimer > 0 {
			st.SlowTimer -= deltaTime
			if st.SlowTimer <= 0 {
				st.SlowTimer = 0
				st.SlowFactor = 1.0
			}
		}

		// Последний тик яда режется по остатку таймера: суммарный урон
		// ровно rate*duration при любом шаге.
		if st.DotTimer > 0 {
			step := deltaTime
			if step > st.DotTimer {
				step = st.DotTimer
			}
			e.TakeDamage(st.DotRate * step)
			st.DotTimer -= step
			if st.DotTimer <= 0 {
				st.DotTimer = 0
				st.DotRate = 0
			}
		}

		if st.TintTimer > 0 {
			st.TintTimer -= deltaTime
			if st.TintTimer <= 0 {
				st.TintTimer = 0
				st.Tint = ""
			}
		}
	}
}
