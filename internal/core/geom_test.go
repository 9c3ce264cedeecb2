package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching vertical edges (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching horizontal edges (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "corner touch only (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
		{
			name:     "separated by tiny gap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10.001, 0, 10, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Left() != 5 {
		t.Errorf("Left() = %v, expected 5", r.Left())
	}
	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Top() != 10 {
		t.Errorf("Top() = %v, expected 10", r.Top())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
	if r.CenterX() != 15 || r.CenterY() != 17.5 {
		t.Errorf("Center = (%v, %v), expected (15, 17.5)", r.CenterX(), r.CenterY())
	}
}

func TestRectEdgeSetters(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*Rect)
		wantX float64
		wantY float64
	}{
		{"SetLeft", func(r *Rect) { r.SetLeft(100) }, 100, 10},
		{"SetRight", func(r *Rect) { r.SetRight(100) }, 80, 10},
		{"SetTop", func(r *Rect) { r.SetTop(100) }, 5, 100},
		{"SetBottom", func(r *Rect) { r.SetBottom(100) }, 5, 85},
		{"SetCenterX", func(r *Rect) { r.SetCenterX(100) }, 90, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRect(5, 10, 20, 15)
			tc.apply(&r)
			if r.X != tc.wantX || r.Y != tc.wantY {
				t.Errorf("position = (%v, %v), expected (%v, %v)", r.X, r.Y, tc.wantX, tc.wantY)
			}
			if r.W != 20 || r.H != 15 {
				t.Errorf("size changed to (%v, %v), expected (20, 15)", r.W, r.H)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestVec2Scale(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		f    float64
		want Vec2
	}{
		{"grow", Vec2{X: 10, Y: -10}, 1.02, Vec2{X: 10.2, Y: -10.2}},
		{"shrink", Vec2{X: 4, Y: 2}, 0.5, Vec2{X: 2, Y: 1}},
		{"zero", Vec2{X: 3, Y: 7}, 0, Vec2{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Scale(tc.f)
			if got != tc.want {
				t.Errorf("Scale(%v) = %+v, expected %+v", tc.f, got, tc.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestAbsF(t *testing.T) {
	if AbsF(5.5) != 5.5 {
		t.Error("AbsF(5.5) should be 5.5")
	}
	if AbsF(-5.5) != 5.5 {
		t.Error("AbsF(-5.5) should be 5.5")
	}
	if AbsF(0) != 0 {
		t.Error("AbsF(0) should be 0")
	}
}
