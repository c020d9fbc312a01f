package point

import "testing"

func TestAddSubtract(t *testing.T) {
	a := New(3, -4)
	b := New(-7, 2)
	if got := Add(a, b); got != New(-4, -2) {
		t.Errorf("Add() = %v, want (-4,-2)", got)
	}
	if got := Subtract(a, b); got != New(10, -6) {
		t.Errorf("Subtract() = %v, want (10,-6)", got)
	}
	if a != New(3, -4) || b != New(-7, 2) {
		t.Errorf("inputs were mutated: a=%v b=%v", a, b)
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"none", None, None},
		{"up", Up, Down},
		{"left", Left, Right},
		{"mixed", New(5, -3), New(-5, 3)},
		{"zero x", New(0, 9), New(0, -9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reverse(tt.in)
			if got != tt.want {
				t.Errorf("Reverse(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if back := Reverse(got); back != tt.in {
				t.Errorf("Reverse(Reverse(%v)) = %v", tt.in, back)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	values := []int{-1000, -11, -1, 0, 1, 2, 10, 99999}
	for _, x := range values {
		for _, y := range values {
			n := Normalize(New(x, y))
			if n.X < -1 || n.X > 1 || n.Y < -1 || n.Y > 1 {
				t.Fatalf("Normalize(%d,%d) = %v out of range", x, y, n)
			}
			if (x == 0) != (n.X == 0) || (y == 0) != (n.Y == 0) {
				t.Fatalf("Normalize(%d,%d) = %v lost zero-ness", x, y, n)
			}
			if again := Normalize(n); again != n {
				t.Fatalf("Normalize not idempotent for (%d,%d): %v then %v", x, y, n, again)
			}
		}
	}
	if got := Normalize(New(-10, 0)); got != Left {
		t.Errorf("Normalize(-10,0) = %v, want LEFT", got)
	}
}

func TestEqualAndZero(t *testing.T) {
	if !IsEqual(New(1, 2), New(1, 2)) {
		t.Error("IsEqual((1,2),(1,2)) = false")
	}
	if IsEqual(New(1, 2), New(2, 1)) {
		t.Error("IsEqual((1,2),(2,1)) = true")
	}
	if !IsZero(None) {
		t.Error("IsZero(None) = false")
	}
	if IsZero(Up) {
		t.Error("IsZero(Up) = true")
	}
}

func TestMoveToGrid(t *testing.T) {
	p := New(20, 20)
	if got := MoveToGrid(p, Left, DefaultCellSize); got != New(10, 20) {
		t.Errorf("MoveToGrid LEFT = %v, want (10,20)", got)
	}
	if got := MoveToGrid(p, New(2, -1), 5); got != New(30, 15) {
		t.Errorf("MoveToGrid non-unit = %v, want (30,15)", got)
	}
	if got := Step(p, Down); got != New(20, 30) {
		t.Errorf("Step DOWN = %v, want (20,30)", got)
	}
}

func TestUnitSquareRoundTrip(t *testing.T) {
	starts := []Point{None, New(20, 20), New(-35, 7), New(1000, -1000)}
	for _, start := range starts {
		p := start
		for _, d := range []Point{Left, Down, Right, Up} {
			p = Step(p, d)
		}
		if p != start {
			t.Errorf("round trip from %v ended at %v", start, p)
		}
	}
}

func TestNameParse(t *testing.T) {
	for _, d := range []Point{None, Up, Down, Left, Right} {
		got, ok := Parse(Name(d))
		if !ok || got != d {
			t.Errorf("Parse(Name(%v)) = %v, %v", d, got, ok)
		}
	}
	if _, ok := Parse("sideways"); ok {
		t.Error("Parse(sideways) succeeded")
	}
	if Name(New(3, 3)) != "" {
		t.Error("Name of non-canonical point is not empty")
	}
	if !IsCanonical(Up) || IsCanonical(None) || IsCanonical(New(1, 1)) {
		t.Error("IsCanonical misclassified")
	}
}
