// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"
)

const epsilon = 1e-9

var unitY = Vector2D{Y: 1}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestVector2D_AddSub(t *testing.T) {
	tests := []struct {
		name    string
		v1      Vector2D
		v2      Vector2D
		wantAdd Vector2D
		wantSub Vector2D
	}{
		{
			name:    "positive_vectors",
			v1:      Vector2D{X: 3, Y: 4},
			v2:      Vector2D{X: 1, Y: 2},
			wantAdd: Vector2D{X: 4, Y: 6},
			wantSub: Vector2D{X: 2, Y: 2},
		},
		{
			name:    "mixed_signs",
			v1:      Vector2D{X: 5, Y: -3},
			v2:      Vector2D{X: -2, Y: 7},
			wantAdd: Vector2D{X: 3, Y: 4},
			wantSub: Vector2D{X: 7, Y: -10},
		},
		{
			name:    "zero_vector",
			v1:      Vector2D{},
			v2:      Vector2D{X: 5, Y: -3},
			wantAdd: Vector2D{X: 5, Y: -3},
			wantSub: Vector2D{X: -5, Y: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v1.Add(tt.v2); got != tt.wantAdd {
				t.Errorf("Add() = %v, expected %v", got, tt.wantAdd)
			}
			if got := tt.v1.Sub(tt.v2); got != tt.wantSub {
				t.Errorf("Sub() = %v, expected %v", got, tt.wantSub)
			}
		})
	}
}

func TestVector2D_LengthAndDistance(t *testing.T) {
	v := Vector2D{X: 3, Y: 4}
	if v.Length() != 5 {
		t.Errorf("Length() = %v, expected 5", v.Length())
	}
	if v.LengthSquared() != 25 {
		t.Errorf("LengthSquared() = %v, expected 25", v.LengthSquared())
	}
	if d := v.Distance(Vector2D{}); d != 5 {
		t.Errorf("Distance() = %v, expected 5", d)
	}
	if d := v.DistanceSquared(Vector2D{X: 3, Y: 6}); d != 4 {
		t.Errorf("DistanceSquared() = %v, expected 4", d)
	}
}

func TestVector2D_NormalizeZeroVector_ReturnsZero(t *testing.T) {
	if got := (Vector2D{}).Normalize(); got != (Vector2D{}) {
		t.Errorf("Normalize() of zero vector = %v, expected zero", got)
	}
}

func TestVector2D_AngleTo(t *testing.T) {
	tests := []struct {
		name     string
		from     Vector2D
		to       Vector2D
		expected float64
	}{
		{"quarter_turn_ccw", UnitX, unitY, math.Pi / 2},
		{"quarter_turn_cw", unitY, UnitX, -math.Pi / 2},
		{"same_direction", Vector2D{X: 2, Y: 2}, Vector2D{X: 1, Y: 1}, 0},
		{"opposite", UnitX, UnitX.Neg(), math.Pi},
		{"zero_from", Vector2D{}, unitY, 0},
		{"zero_to", unitY, Vector2D{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.AngleTo(tt.to)
			if math.IsNaN(got) {
				t.Fatalf("AngleTo() returned NaN")
			}
			if !approxEqual(got, tt.expected) {
				t.Errorf("AngleTo() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestVector2D_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2D
		angle    float64
		expected Vector2D
	}{
		{"rotate_90_degrees", UnitX, math.Pi / 2, unitY},
		{"rotate_minus_90_degrees", UnitX, -math.Pi / 2, unitY.Neg()},
		{"rotate_180_degrees", Vector2D{X: 1, Y: 2}, math.Pi, Vector2D{X: -1, Y: -2}},
		{"full_turn", Vector2D{X: 3, Y: -4}, 2 * math.Pi, Vector2D{X: 3, Y: -4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Rotate(tt.angle)
			if !approxEqual(got.X, tt.expected.X) || !approxEqual(got.Y, tt.expected.Y) {
				t.Errorf("Rotate() = %v, expected %v", got, tt.expected)
			}
			if !approxEqual(got.Length(), tt.v.Length()) {
				t.Errorf("Rotate() changed length: %v -> %v", tt.v.Length(), got.Length())
			}
		})
	}
}

func TestFromAngle(t *testing.T) {
	got := FromAngle(math.Pi/2, 2)
	if !approxEqual(got.X, 0) || !approxEqual(got.Y, 2) {
		t.Errorf("FromAngle() = %v, expected (0, 2)", got)
	}
}
