package snake

import (
	"fmt"

	"github.com/vinser/snek/internal/point"
)

// Role tells the head segment apart from body segments.
// It is either Head or Body.
type Role interface {
	role()
}

// Head is the role of the leading segment. It has no predecessor.
type Head struct{}

// Body is the role of every other segment.
// Previous is the index of the segment right ahead of it in the chain.
type Body struct {
	Previous int
}

func (Head) role() {}
func (Body) role() {}

// Segment is one body part of the snake.
type Segment struct {
	position  point.Point
	direction point.Point
	role      Role
}

// Position returns the segment's absolute grid position.
func (s Segment) Position() point.Point {
	return s.position
}

// Direction returns the last movement vector of the segment.
// For a freshly appended segment it is inherited from its predecessor
// and stays provisional until the segment's first update.
func (s Segment) Direction() point.Point {
	return s.direction
}

// Role returns the segment's role.
func (s Segment) Role() Role {
	return s.role
}

// IsHead reports whether the segment leads the chain.
func (s Segment) IsHead() bool {
	_, ok := s.role.(Head)
	return ok
}

// Previous returns the predecessor index of a body segment.
func (s Segment) Previous() (int, bool) {
	if b, ok := s.role.(Body); ok {
		return b.Previous, true
	}
	return 0, false
}

func (s Segment) String() string {
	if s.IsHead() {
		return fmt.Sprintf("head%v→%s", s.position, point.Name(s.direction))
	}
	return fmt.Sprintf("body%v→%s", s.position, point.Name(s.direction))
}
