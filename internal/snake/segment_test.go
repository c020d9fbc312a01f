package snake

import (
	"testing"

	"github.com/vinser/snek/internal/point"
)

func TestSegmentRole(t *testing.T) {
	head := Segment{position: point.New(1, 2), direction: point.Up, role: Head{}}
	body := Segment{position: point.New(1, 3), direction: point.Up, role: Body{Previous: 0}}

	if !head.IsHead() {
		t.Error("head.IsHead() = false")
	}
	if _, ok := head.Previous(); ok {
		t.Error("head has a previous index")
	}
	if body.IsHead() {
		t.Error("body.IsHead() = true")
	}
	if prev, ok := body.Previous(); !ok || prev != 0 {
		t.Errorf("body.Previous() = %d, %v", prev, ok)
	}
	if _, ok := body.Role().(Body); !ok {
		t.Errorf("body.Role() = %T", body.Role())
	}
}

func TestSegmentString(t *testing.T) {
	s := Segment{position: point.New(10, 20), direction: point.Left, role: Head{}}
	if got := s.String(); got != "head(10,20)→left" {
		t.Errorf("String() = %q", got)
	}
}
