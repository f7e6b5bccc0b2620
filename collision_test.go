package navkit

import "testing"

type diamond struct{ r Rect }

func (d diamond) Bounds() Rect { return d.r }

func TestCollides(t *testing.T) {
	tests := []struct {
		name string
		a, b Shape
		want bool
	}{
		{"point in rect", Vec2{5, 5}, Rect{Width: 10, Height: 10}, true},
		{"point on rect edge", Vec2{10, 5}, Rect{Width: 10, Height: 10}, true},
		{"point outside rect", Vec2{11, 5}, Rect{Width: 10, Height: 10}, false},
		{"rect contains point", Rect{Width: 10, Height: 10}, Vec2{3, 3}, true},
		{"same points", Vec2{1, 2}, Vec2{1, 2}, true},
		{"different points", Vec2{1, 2}, Vec2{2, 1}, false},
		{"overlapping rects", Rect{Width: 10, Height: 10}, Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"touching rects", Rect{Width: 10, Height: 10}, Rect{X: 10, Width: 10, Height: 10}, true},
		{"separate rects", Rect{Width: 10, Height: 10}, Rect{X: 11, Width: 10, Height: 10}, false},
		{"circles overlap", Circle{0, 0, 5}, Circle{8, 0, 4}, true},
		{"circles touch", Circle{0, 0, 5}, Circle{10, 0, 5}, true},
		{"circles apart", Circle{0, 0, 5}, Circle{11, 0, 5}, false},
		{"circle contains point", Circle{0, 0, 5}, Vec2{3, 4}, true},
		{"point outside circle", Vec2{4, 4}, Circle{0, 0, 5}, false},
		{"circle hits rect side", Circle{15, 5, 5}, Rect{Width: 10, Height: 10}, true},
		{"circle near rect corner", Circle{14, 14, 5}, Rect{Width: 10, Height: 10}, false},
		{"rect hits circle", Rect{Width: 10, Height: 10}, Circle{13, 13, 5}, true},
		{"circle inside rect", Circle{5, 5, 1}, Rect{Width: 10, Height: 10}, true},
		{"custom shape by bounds", diamond{Rect{Width: 4, Height: 4}}, Vec2{2, 2}, true},
		{"custom shape miss", Rect{Width: 4, Height: 4}, diamond{Rect{X: 10, Width: 4, Height: 4}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(tt.a, tt.b); got != tt.want {
				t.Errorf("Collides(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Collides(tt.b, tt.a); got != tt.want {
				t.Errorf("Collides(%v, %v) = %v, want %v (reversed)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestShapeBounds(t *testing.T) {
	if got, want := (Circle{X: 10, Y: 20, Radius: 5}).Bounds(), (Rect{X: 5, Y: 15, Width: 10, Height: 10}); got != want {
		t.Errorf("Circle.Bounds() = %v, want %v", got, want)
	}
	if got, want := (Vec2{3, 4}).Bounds(), (Rect{X: 3, Y: 4}); got != want {
		t.Errorf("Vec2.Bounds() = %v, want %v", got, want)
	}
	r := Rect{X: 1, Y: 2, Width: 3, Height: 4}
	if r.Max() != (Vec2{4, 6}) || r.Min() != (Vec2{1, 2}) {
		t.Errorf("Min/Max = %v/%v", r.Min(), r.Max())
	}
}
