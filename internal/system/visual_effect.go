// internal/system/visual_effect.go
package system

import "spelltower/internal/entity"

// VisualEffectSystem старит эффекты атак и выбрасывает завершённые.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	kept := s.ecs.Effects[:0]
	for _, fx := range s.ecs.Effects {
		fx.Timer += deltaTime
		if fx.Timer < fx.Duration {
			kept = append(kept, fx)
		}
	}
	for i := len(kept); i < len(s.ecs.Effects); i++ {
		s.ecs.Effects[i] = nil
	}
	s.ecs.Effects = kept
}
