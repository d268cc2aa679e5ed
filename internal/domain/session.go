package domain

import (
	"errors"
	"time"
)

const (
	InitialDelay = 100 * time.Millisecond
	MinDelay     = 30 * time.Millisecond
)

var (
	ErrSessionRunning = errors.New("session is running")
)

// StartFood is where the primary lemon waits when a session begins.
var StartFood = Position{X: 0, Y: 100}

// Session is the whole mutable state of one player's run.
type Session struct {
	Difficulty DifficultySettings

	Snake     *Snake
	Lemon     Food
	Rotten    [RottenSlots]Food
	Apple     Food
	Banana    Food
	Obstacles []Obstacle

	Score     int
	HighScore int
	Delay     time.Duration
	Reverse   ReverseControls
	Running   bool

	rng Random
	now func() time.Time
}

func NewSession(difficulty Difficulty, highScore int, rng Random, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	s := &Session{
		Difficulty: difficulty.Settings(),
		Snake:      NewSnake(),
		HighScore:  highScore,
		Delay:      InitialDelay,
		rng:        rng,
		now:        now,
	}
	s.Lemon.Kind = FoodLemon
	for i := range s.Rotten {
		s.Rotten[i].Kind = FoodRottenLemon
	}
	s.Apple.Kind = FoodApple
	s.Banana.Kind = FoodBanana
	s.parkAll()
	return s
}

// SetDifficulty is refused mid-game.
func (s *Session) SetDifficulty(d Difficulty) error {
	if s.Running {
		return ErrSessionRunning
	}
	s.Difficulty = d.Settings()
	return nil
}

// Start resets the field for a fresh run with the current difficulty.
func (s *Session) Start() {
	s.Snake = NewSnake()
	s.Lemon.Place(StartFood)
	for i := range s.Rotten {
		s.Rotten[i].Park()
	}
	s.Apple.Park()
	s.Banana.Park()
	s.Obstacles = nil
	s.Reverse.Clear()
	s.Score = 0
	s.Delay = InitialDelay
	s.Running = true

	if s.Difficulty.Obstacles {
		for i := 0; i < s.Difficulty.ObstacleCount; i++ {
			s.Obstacles = append(s.Obstacles, Obstacle{Position: s.PickPosition(ObstacleMargin)})
		}
	}
}

// Steer applies a direction request, inverted while reverse controls hold.
func (s *Session) Steer(dir Direction) bool {
	if !s.Running {
		return false
	}
	if s.Reverse.ActiveAt(s.now()) {
		dir = dir.Opposite()
	}
	return s.Snake.Turn(dir)
}

func (s *Session) Foods() []*Food {
	foods := make([]*Food, 0, 3+RottenSlots)
	foods = append(foods, &s.Lemon)
	for i := range s.Rotten {
		foods = append(foods, &s.Rotten[i])
	}
	foods = append(foods, &s.Apple, &s.Banana)
	return foods
}

func (s *Session) occupied(extra []Positioned) []Positioned {
	out := make([]Positioned, 0, 1+len(s.Snake.Segments)+len(s.Obstacles)+3+RottenSlots+len(extra))
	out = append(out, s.Snake.Head)
	for _, f := range s.Foods() {
		if f.Active {
			out = append(out, *f)
		}
	}
	for _, o := range s.Obstacles {
		out = append(out, o)
	}
	for _, seg := range s.Snake.Segments {
		out = append(out, seg)
	}
	return append(out, extra...)
}

// PickPosition finds a spawn spot clear of everything currently on the field.
func (s *Session) PickPosition(margin float64, extra ...Positioned) Position {
	return PickPosition(s.rng, margin, s.occupied(extra))
}

func (s *Session) parkAll() {
	for _, f := range s.Foods() {
		f.Park()
	}
}
