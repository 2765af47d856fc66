package level

type Point struct {
	X, Y float64
}

// Zone is the highlighted square of a level.
type Zone struct {
	X, Y float64
	Size float64
}

// Contains reports whether p is strictly inside z. A point on an edge is
// outside.
func (z Zone) Contains(p Point) bool {
	return p.X > z.X &&
		p.X < z.X+z.Size &&
		p.Y > z.Y &&
		p.Y < z.Y+z.Size
}
