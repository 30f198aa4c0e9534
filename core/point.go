package core

import "fmt"

// Point is a grid cell coordinate, X is the column and Y the row, both 0-indexed
type Point struct {
	X, Y int
}

// Add returns p offset by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Neg returns the opposite vector
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// IsZero reports whether p is the (0,0) vector
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// IndexOf returns the first index of p in cells at or after from, or -1
func IndexOf(cells []Point, p Point, from int) int {
	for i := from; i < len(cells); i++ {
		if cells[i] == p {
			return i
		}
	}
	return -1
}
