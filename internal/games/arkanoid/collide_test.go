package arkanoid

import (
	"testing"

	"github.com/KolomarenkoDmytrii/arkanoid/internal/core"
)

func TestResolveXAxis(t *testing.T) {
	tests := []struct {
		name      string
		rect      core.Rect
		speed     core.Vec2
		other     core.Rect
		wantX     float64
		wantSpeed core.Vec2
	}{
		{
			name:      "struck left side, snapped flush against it",
			rect:      core.NewRect(15, 0, 5, 5),
			speed:     core.Vec2{X: 4, Y: 2},
			other:     core.NewRect(18, 0, 10, 10),
			wantX:     13, // right edge at other.Left = 18
			wantSpeed: core.Vec2{X: -4, Y: 2},
		},
		{
			name:      "struck right side, snapped flush against it",
			rect:      core.NewRect(8, 0, 5, 5),
			speed:     core.Vec2{X: -4, Y: 2},
			other:     core.NewRect(0, 0, 10, 10),
			wantX:     10, // left edge at other.Right = 10
			wantSpeed: core.Vec2{X: 4, Y: 2},
		},
		{
			name:      "fully inside defaults to right side",
			rect:      core.NewRect(2, 2, 5, 5),
			speed:     core.Vec2{X: 3},
			other:     core.NewRect(0, 0, 6, 10),
			wantX:     6,
			wantSpeed: core.Vec2{X: -3},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rect := tc.rect
			speed := tc.speed
			ResolveXAxis(&rect, &speed, tc.other)

			if rect.X != tc.wantX {
				t.Errorf("rect.X = %v, expected %v", rect.X, tc.wantX)
			}
			if speed != tc.wantSpeed {
				t.Errorf("speed = %+v, expected %+v", speed, tc.wantSpeed)
			}
			if rect.Y != tc.rect.Y {
				t.Errorf("rect.Y changed to %v, X resolution must not touch Y", rect.Y)
			}
			if rect.Intersects(tc.other) {
				t.Error("rect still overlaps other after resolution")
			}
		})
	}
}

func TestResolveYAxis(t *testing.T) {
	// Ball moved down into an obstacle: the vertical displacement is
	// reverted and the vertical speed inverted.
	rect := core.NewRect(0, 12, 5, 5)
	speed := core.Vec2{X: 3, Y: 4}
	other := core.NewRect(0, 13, 10, 10)

	if !rect.Intersects(other) {
		t.Fatal("test setup: rect must overlap other before resolution")
	}

	ResolveYAxis(&rect, &speed)

	if rect.Y != 8 {
		t.Errorf("rect.Y = %v, expected 8 (displacement reverted)", rect.Y)
	}
	if speed.Y != -4 {
		t.Errorf("speed.Y = %v, expected -4", speed.Y)
	}
	if speed.X != 3 {
		t.Errorf("speed.X = %v, Y resolution must not touch X", speed.X)
	}
	if rect.X != 0 {
		t.Errorf("rect.X changed to %v, Y resolution must not touch X", rect.X)
	}
	if rect.Intersects(other) {
		t.Error("rect still overlaps other after resolution")
	}
}

func TestResolveYAxisUpward(t *testing.T) {
	rect := core.NewRect(0, 8, 5, 5)
	speed := core.Vec2{Y: -4}

	ResolveYAxis(&rect, &speed)

	if rect.Y != 12 {
		t.Errorf("rect.Y = %v, expected 12", rect.Y)
	}
	if speed.Y != 4 {
		t.Errorf("speed.Y = %v, expected 4", speed.Y)
	}
}
