// Package snake implements the segment chain that makes up the snake's body:
// how the chain advances one grid cell per tick and how it grows at the tail.
package snake

import (
	"errors"
	"fmt"

	"github.com/vinser/snek/internal/point"
)

// DefaultTailSize is the number of body segments a new chain starts with.
const DefaultTailSize = 2

var (
	ErrNoPosition       = errors.New("snake: no start position")
	ErrInvalidDirection = errors.New("snake: direction is not one of up, down, left or right")
	ErrInvalidCellSize  = errors.New("snake: cell size must be positive")
	ErrInvalidTailSize  = errors.New("snake: tail size must not be negative")
)

// Config describes the chain to build. Position is required.
// A zero Direction defaults to point.Left.
type Config struct {
	Position  *point.Point
	Direction point.Point
}

// Option tweaks chain construction.
type Option func(*options)

type options struct {
	cellSize int
	tailSize int
}

// WithCellSize sets how many grid units one step covers.
func WithCellSize(n int) Option {
	return func(o *options) {
		o.cellSize = n
	}
}

// WithTailSize sets how many body segments trail the head at start.
func WithTailSize(n int) Option {
	return func(o *options) {
		o.tailSize = n
	}
}

// Chain is the ordered sequence of segments, head first.
// The chain owns every segment; body segments refer to their predecessor by index.
type Chain struct {
	parts    []Segment
	cellSize int
}

// New builds a chain with its head at cfg.Position facing cfg.Direction and
// a tail laid out straight behind it.
func New(cfg Config, opts ...Option) (*Chain, error) {
	if cfg.Position == nil {
		return nil, ErrNoPosition
	}
	o := options{
		cellSize: point.DefaultCellSize,
		tailSize: DefaultTailSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cellSize <= 0 {
		return nil, ErrInvalidCellSize
	}
	if o.tailSize < 0 {
		return nil, ErrInvalidTailSize
	}

	dir := cfg.Direction
	if point.IsZero(dir) {
		dir = point.Left
	}
	if !point.IsCanonical(dir) {
		return nil, ErrInvalidDirection
	}

	c := &Chain{
		parts:    make([]Segment, 0, 1+o.tailSize),
		cellSize: o.cellSize,
	}
	c.parts = append(c.parts, Segment{
		position:  *cfg.Position,
		direction: dir,
		role:      Head{},
	})
	for i := 0; i < o.tailSize; i++ {
		c.Grow()
	}
	return c, nil
}

// Position returns the head position.
func (c *Chain) Position() point.Point {
	return c.parts[0].position
}

// SetPosition places the head at p. Body segments are left where they are.
func (c *Chain) SetPosition(p point.Point) {
	c.parts[0].position = p
}

// Direction returns the commanded direction, which is the head's direction.
func (c *Chain) Direction() point.Point {
	return c.parts[0].direction
}

// SetDirection sets the direction the head takes on the next Update.
func (c *Chain) SetDirection(d point.Point) error {
	if !point.IsCanonical(d) {
		return ErrInvalidDirection
	}
	c.parts[0].direction = d
	return nil
}

// CellSize returns the grid units covered by one step.
func (c *Chain) CellSize() int {
	return c.cellSize
}

// Len returns the number of segments, head included.
func (c *Chain) Len() int {
	return len(c.parts)
}

// Head returns the leading segment.
func (c *Chain) Head() Segment {
	return c.parts[0]
}

// Tail returns the last segment. For a head-only chain that is the head.
func (c *Chain) Tail() Segment {
	return c.parts[len(c.parts)-1]
}

// Segment returns the i-th segment counting from the head.
func (c *Chain) Segment(i int) Segment {
	return c.parts[i]
}

// Parts returns a copy of all segments, head first.
func (c *Chain) Parts() []Segment {
	parts := make([]Segment, len(c.parts))
	copy(parts, c.parts)
	return parts
}

// Positions returns segment positions, head first.
func (c *Chain) Positions() []point.Point {
	ps := make([]point.Point, len(c.parts))
	for i, s := range c.parts {
		ps[i] = s.position
	}
	return ps
}

// Contains reports whether any segment sits at p.
func (c *Chain) Contains(p point.Point) bool {
	for _, s := range c.parts {
		if s.position == p {
			return true
		}
	}
	return false
}

// Previous returns the index of the segment ahead of segment i.
// The head has none.
func (c *Chain) Previous(i int) (int, bool) {
	return c.parts[i].Previous()
}

// NewTailPosition returns the cell right behind the last segment,
// opposite to the direction it travels in.
func (c *Chain) NewTailPosition() point.Point {
	if len(c.parts) == 1 {
		return point.MoveToGrid(c.Position(), point.Reverse(c.Direction()), c.cellSize)
	}
	tail := c.Tail()
	return point.MoveToGrid(tail.position, point.Reverse(tail.direction), c.cellSize)
}

// AddTail appends a segment at p. It follows the current last segment and
// borrows its direction until its own first update.
func (c *Chain) AddTail(p point.Point) {
	last := len(c.parts) - 1
	c.parts = append(c.parts, Segment{
		position:  p,
		direction: c.parts[last].direction,
		role:      Body{Previous: last},
	})
}

// Grow appends a segment right behind the tail.
func (c *Chain) Grow() {
	c.AddTail(c.NewTailPosition())
}

// MoveToPrevious moves body segment i onto its predecessor's position and
// points it the way it just moved. Calling it for the head panics.
func (c *Chain) MoveToPrevious(i int) {
	seg := &c.parts[i]
	body, ok := seg.role.(Body)
	if !ok {
		panic(fmt.Sprintf("snake: segment %d has no previous segment", i))
	}
	prev := c.parts[body.Previous].position
	seg.direction = point.Normalize(point.Subtract(prev, seg.position))
	seg.position = prev
}

// Update advances the chain by one cell. Body segments are moved from the tail
// towards the head so each one still reads its predecessor's old position,
// then the head steps in the commanded direction.
func (c *Chain) Update() {
	for i := len(c.parts) - 1; i >= 1; i-- {
		c.MoveToPrevious(i)
	}
	c.parts[0].position = point.MoveToGrid(c.Position(), c.Direction(), c.cellSize)
}
