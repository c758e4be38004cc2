package pong

// Direction is the diagonal the ball travels along.
// Screen y grows downwards, so Up means decreasing y.
type Direction int

const (
	UpRight Direction = iota
	DownRight
	DownLeft
	UpLeft
)

var directionNames = [...]string{"UpRight", "DownRight", "DownLeft", "UpLeft"}

func (d Direction) String() string {
	if d < UpRight || d > UpLeft {
		return "Direction(?)"
	}
	return directionNames[d]
}

func (d Direction) Up() bool    { return d == UpRight || d == UpLeft }
func (d Direction) Down() bool  { return !d.Up() }
func (d Direction) Right() bool { return d == UpRight || d == DownRight }
func (d Direction) Left() bool  { return !d.Right() }

// FlipVertical swaps Up and Down, keeping Left/Right.
func (d Direction) FlipVertical() Direction {
	switch d {
	case UpRight:
		return DownRight
	case DownRight:
		return UpRight
	case DownLeft:
		return UpLeft
	default:
		return DownLeft
	}
}

// FlipHorizontal swaps Left and Right, keeping Up/Down.
func (d Direction) FlipHorizontal() Direction {
	switch d {
	case UpRight:
		return UpLeft
	case DownRight:
		return DownLeft
	case DownLeft:
		return DownRight
	default:
		return UpRight
	}
}

// Signs returns the unit x and y signs of the direction.
func (d Direction) Signs() (sx, sy float64) {
	sx, sy = 1, 1
	if d.Left() {
		sx = -1
	}
	if d.Up() {
		sy = -1
	}
	return sx, sy
}
