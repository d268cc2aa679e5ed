package domain

import "time"

type Effect string

const (
	EffectBite  Effect = "bite"
	EffectPlop  Effect = "plop"
	EffectHmmm  Effect = "hmmm"
	EffectBlegh Effect = "blegh"
	EffectDeath Effect = "death"
)

type DeathReason int32

const (
	DeathBoundary DeathReason = iota
	DeathSelf
	DeathObstacle
	DeathRottenFood
)

func (r DeathReason) String() string {
	switch r {
	case DeathBoundary:
		return "hit the wall"
	case DeathSelf:
		return "bit itself"
	case DeathObstacle:
		return "hit a spike"
	case DeathRottenFood:
		return "ate too many rotten lemons"
	}
	return "unknown"
}

type DeathReport struct {
	Reason     DeathReason
	Difficulty Difficulty
	// FinalScore is the score before the death reset, taken before the
	// rotten penalty when that penalty was fatal.
	FinalScore int
	At         Position
	Heading    Direction
	Segments   []Position
}

type TickResult struct {
	Effects      []Effect
	Eaten        []FoodKind
	LemonMoved   bool
	Spawned      []*Food
	ScoreChanged bool
	HighScore    bool
	Death        *DeathReport
}

func (r *TickResult) effect(e Effect) {
	r.Effects = append(r.Effects, e)
}

// Tick advances the session by one step. Collision checks run against the
// positions from the end of the previous tick, then the snake moves.
func (s *Session) Tick() *TickResult {
	result := &TickResult{}
	if !s.Running {
		return result
	}
	now := s.now()

	if s.Reverse.Active && !s.Reverse.ActiveAt(now) {
		s.Reverse.Clear()
	}

	if reason, dead := s.fatalCollision(); dead {
		s.die(reason, s.Score, result)
		return result
	}

	s.eatLemon(result)
	s.eatBanana(result)
	s.eatApple(now, result)
	for i := range s.Rotten {
		if s.eatRotten(&s.Rotten[i], result) {
			return result
		}
	}

	s.Snake.Move()
	return result
}

func (s *Session) fatalCollision() (DeathReason, bool) {
	head := s.Snake.Head
	if head.OutOfBounds() {
		return DeathBoundary, true
	}
	for _, seg := range s.Snake.Segments {
		if touching(head, seg) {
			return DeathSelf, true
		}
	}
	for _, o := range s.Obstacles {
		if touching(head, o) {
			return DeathObstacle, true
		}
	}
	return 0, false
}

func (s *Session) eatLemon(result *TickResult) {
	if !s.Lemon.Active || !touching(s.Snake.Head, s.Lemon) {
		return
	}
	result.effect(EffectBite)
	result.Eaten = append(result.Eaten, FoodLemon)

	s.Lemon.Place(s.PickPosition(FoodMargin))
	result.LemonMoved = true
	result.Spawned = append(result.Spawned, &s.Lemon)
	result.effect(EffectPlop)

	s.Snake.Grow()

	for i := range s.Rotten {
		s.roll(&s.Rotten[i], s.Difficulty.RottenChance[i], result)
	}
	s.roll(&s.Banana, s.Difficulty.BananaChance, result)
	s.roll(&s.Apple, s.Difficulty.AppleChance, result)

	s.speedUp()
	s.gain(1, result)
}

// roll places f with the given probability, otherwise parks it.
func (s *Session) roll(f *Food, chance float64, result *TickResult) {
	if s.rng.Float64() < chance {
		f.Place(s.PickPosition(FoodMargin))
		result.Spawned = append(result.Spawned, f)
		return
	}
	f.Park()
}

func (s *Session) eatBanana(result *TickResult) {
	if !s.Banana.Active || !touching(s.Snake.Head, s.Banana) {
		return
	}
	result.effect(EffectHmmm)
	result.Eaten = append(result.Eaten, FoodBanana)
	s.gain(10, result)
	s.speedUp()
	s.Banana.Park()
}

func (s *Session) eatApple(now time.Time, result *TickResult) {
	if !s.Apple.Active || !touching(s.Snake.Head, s.Apple) {
		return
	}
	result.effect(EffectHmmm)
	result.Eaten = append(result.Eaten, FoodApple)
	s.Reverse.Activate(now, ReverseControlsDuration)
	s.gain(5, result)
	s.Apple.Park()
}

// eatRotten reports whether the penalty ended the run.
func (s *Session) eatRotten(f *Food, result *TickResult) bool {
	if !f.Active || !touching(s.Snake.Head, *f) {
		return false
	}
	result.effect(EffectBlegh)
	result.Eaten = append(result.Eaten, FoodRottenLemon)
	before := s.Score
	s.Score -= 5
	result.ScoreChanged = true
	f.Park()
	s.Reverse.Clear()
	if s.Score < 0 {
		s.die(DeathRottenFood, before, result)
		return true
	}
	return false
}

func (s *Session) gain(points int, result *TickResult) {
	s.Score += points
	result.ScoreChanged = true
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		result.HighScore = true
	}
}

func (s *Session) speedUp() {
	s.Delay -= s.Difficulty.SpeedBonus
	if s.Delay < MinDelay {
		s.Delay = MinDelay
	}
}

func (s *Session) die(reason DeathReason, finalScore int, result *TickResult) {
	result.effect(EffectDeath)
	result.Death = &DeathReport{
		Reason:     reason,
		Difficulty: s.Difficulty.Difficulty,
		FinalScore: finalScore,
		At:         s.Snake.Head.Position,
		Heading:    s.Snake.Head.Direction,
	}
	for _, seg := range s.Snake.Segments {
		result.Death.Segments = append(result.Death.Segments, seg.Position)
	}

	s.Snake.Park()
	s.parkAll()
	s.Obstacles = nil
	s.Reverse.Clear()

	if finalScore > s.HighScore {
		s.HighScore = finalScore
		result.HighScore = true
	}
	s.Score = 0
	s.Delay = InitialDelay
	s.Running = false
}
