// internal/types/types.go
package types

// EntityID - идентификатор сущности в мире. Выдаётся по возрастанию, 0 не используется.
type EntityID int
