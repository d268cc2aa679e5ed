package domain

import "time"

type FoodKind int32

const (
	FoodLemon FoodKind = iota
	FoodRottenLemon
	FoodApple
	FoodBanana
)

func (k FoodKind) String() string {
	switch k {
	case FoodLemon:
		return "lemon"
	case FoodRottenLemon:
		return "rotten lemon"
	case FoodApple:
		return "apple"
	case FoodBanana:
		return "banana"
	}
	return "unknown"
}

type Food struct {
	Position
	Kind   FoodKind
	Active bool
}

func (f *Food) Place(p Position) {
	f.Position = p
	f.Active = true
}

func (f *Food) Park() {
	f.Position = Parked
	f.Active = false
}

type Obstacle struct {
	Position
}

const ReverseControlsDuration = 5 * time.Second

// ReverseControls inverts steering while active.
type ReverseControls struct {
	Active bool
	Until  time.Time
}

func (r *ReverseControls) Activate(now time.Time, d time.Duration) {
	r.Active = true
	r.Until = now.Add(d)
}

func (r ReverseControls) ActiveAt(now time.Time) bool {
	return r.Active && now.Before(r.Until)
}

func (r *ReverseControls) Clear() {
	r.Active = false
	r.Until = time.Time{}
}
