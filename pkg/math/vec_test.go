package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec2{}).Normalize() != (Vec2{}) {
		t.Error("normalizing the zero vector should return zero")
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Mul(t *testing.T) {
	got := Vec3{0.5, 1, 2}.Mul(Vec3{2, 3, 0.25})
	want := Vec3{1, 3, 0.5}
	if got != want {
		t.Errorf("Vec3.Mul() = %v, want %v", got, want)
	}
}

func TestVec3Reflect(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		n    Vec3
		want Vec3
	}{
		{"head on", Vec3{0, 0, -1}, Vec3{0, 0, 1}, Vec3{0, 0, 1}},
		{"grazing", Vec3{1, -1, 0}, Vec3{0, 1, 0}, Vec3{1, 1, 0}},
		{"parallel", Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Reflect(tt.n); got != tt.want {
				t.Errorf("Reflect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3Array(t *testing.T) {
	v := Vec3{1, 2, 3}
	if FromArray(v.Array()) != v {
		t.Error("Array/FromArray should round trip")
	}
}
