// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// MoveToward сдвигает точку (x, y) к (tx, ty) на step. Если шаг перелетает
// цель, точка встаёт ровно в цель и arrived == true.
func MoveToward(x, y, tx, ty, step float64) (nx, ny float64, arrived bool) {
	dx, dy := tx-x, ty-y
	dist := math.Hypot(dx, dy)
	if dist <= step || dist == 0 {
		return tx, ty, true
	}
	return x + dx/dist*step, y + dy/dist*step, false
}

// Clamp01 ограничивает v диапазоном [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
