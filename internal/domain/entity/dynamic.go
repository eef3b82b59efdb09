package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// Dynamic is the capability set shared by every entity a level simulates.
// An expired entity is skipped for the rest of the tick and pruned after it.
type Dynamic interface {
	Update(dt float64)
	IsExpired() bool
}
