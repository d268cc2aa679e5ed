package domain

type Direction int32

const (
	DirectionStopped Direction = 0
	DirectionUp      Direction = 1
	DirectionDown    Direction = 2
	DirectionLeft    Direction = 3
	DirectionRight   Direction = 4
)

func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return DirectionStopped
}

// Delta is one step in screen-independent field units, Y grows upwards.
func (d Direction) Delta() Position {
	switch d {
	case DirectionUp:
		return Position{0, Step}
	case DirectionDown:
		return Position{0, -Step}
	case DirectionLeft:
		return Position{-Step, 0}
	case DirectionRight:
		return Position{Step, 0}
	}
	return Position{}
}

func (d Direction) IsOpposite(other Direction) bool {
	return d != DirectionStopped && d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "stop"
}
