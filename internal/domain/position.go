package domain

import "math"

const (
	// FieldBound is the absolute coordinate a head may reach before it dies.
	FieldBound = 290
	// SpawnBound limits random placement so nothing spawns on the border.
	SpawnBound = 280
	Step       = 20

	CollisionDistance = 20.0
	FoodMargin        = 40.0
	ObstacleMargin    = 80.0
)

// Parked is the off-field position for inactive entities.
var Parked = Position{X: 1000, Y: 1000}

type Position struct {
	X int
	Y int
}

func (p Position) Pos() Position {
	return p
}

func (p Position) Add(other Position) Position {
	return Position{
		X: p.X + other.X,
		Y: p.Y + other.Y,
	}
}

func (p Position) Distance(other Position) float64 {
	return math.Hypot(float64(p.X-other.X), float64(p.Y-other.Y))
}

func (p Position) OutOfBounds() bool {
	return p.X > FieldBound || p.X < -FieldBound || p.Y > FieldBound || p.Y < -FieldBound
}

// Positioned is satisfied by every entity that occupies a spot on the field.
type Positioned interface {
	Pos() Position
}

func touching(a, b Positioned) bool {
	return a.Pos().Distance(b.Pos()) < CollisionDistance
}
