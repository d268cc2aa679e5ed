package domain

type Head struct {
	Position
	Direction Direction
	// LastMoved is the direction of the most recent step, used to block
	// flips that two quick key presses inside one tick would otherwise allow.
	LastMoved Direction
}

type Segment struct {
	Position
}

type Snake struct {
	Head     Head
	Segments []Segment
}

func NewSnake() *Snake {
	return &Snake{
		Head: Head{Direction: DirectionStopped, LastMoved: DirectionStopped},
	}
}

// Turn reports whether the new heading was accepted.
func (s *Snake) Turn(dir Direction) bool {
	if dir == DirectionStopped {
		return false
	}
	reference := s.Head.LastMoved
	if reference == DirectionStopped {
		reference = s.Head.Direction
	}
	if reference.IsOpposite(dir) {
		return false
	}
	s.Head.Direction = dir
	return true
}

// Grow appends a segment behind the current tail; it catches up on the next move.
func (s *Snake) Grow() {
	tail := s.Head.Position
	if n := len(s.Segments); n > 0 {
		tail = s.Segments[n-1].Position
	}
	s.Segments = append(s.Segments, Segment{Position: tail})
}

// Move shifts every segment into the spot of the one ahead and steps the head.
func (s *Snake) Move() {
	if s.Head.Direction == DirectionStopped {
		return
	}
	for i := len(s.Segments) - 1; i > 0; i-- {
		s.Segments[i].Position = s.Segments[i-1].Position
	}
	if len(s.Segments) > 0 {
		s.Segments[0].Position = s.Head.Position
	}
	s.Head.Position = s.Head.Position.Add(s.Head.Direction.Delta())
	s.Head.LastMoved = s.Head.Direction
}

func (s *Snake) Park() {
	s.Head = Head{Position: Parked, Direction: DirectionStopped, LastMoved: DirectionStopped}
	s.Segments = nil
}

func (s *Snake) Len() int {
	return len(s.Segments) + 1
}
