package domain

import "math"

// MaxPlacementAttempts caps rejection sampling on a crowded field.
const MaxPlacementAttempts = 1000

// Random is the subset of *rand.Rand the game needs.
type Random interface {
	Float64() float64
	Intn(n int) int
}

func randomPosition(rng Random) Position {
	span := 2*SpawnBound + 1
	return Position{
		X: rng.Intn(span) - SpawnBound,
		Y: rng.Intn(span) - SpawnBound,
	}
}

func clearance(p Position, occupied []Positioned) float64 {
	gap := math.Inf(1)
	for _, o := range occupied {
		if d := p.Distance(o.Pos()); d < gap {
			gap = d
		}
	}
	return gap
}

// PickPosition samples spawn coordinates at least margin away from every
// occupied spot. When the field is too crowded it settles for the roomiest
// candidate it saw.
func PickPosition(rng Random, margin float64, occupied []Positioned) Position {
	var best Position
	bestGap := -1.0
	for i := 0; i < MaxPlacementAttempts; i++ {
		p := randomPosition(rng)
		gap := clearance(p, occupied)
		if gap >= margin {
			return p
		}
		if gap > bestGap {
			best, bestGap = p, gap
		}
	}
	return best
}
