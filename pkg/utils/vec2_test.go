package utils

import (
	"math"
	"testing"
)

const vecEpsilon = 1e-9

func almostEqualVec(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < vecEpsilon && math.Abs(a.Y-b.Y) < vecEpsilon
}

// TestVec2Normalize 测试归一化（包含零向量）
func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name     string
		input    Vec2
		expected Vec2
	}{
		{"零向量保持为零", Vec2{}, Vec2{}},
		{"X 轴", Vec2{X: 5}, Vec2{X: 1}},
		{"3-4-5", Vec2{X: 3, Y: 4}, Vec2{X: 0.6, Y: 0.8}},
		{"负方向", Vec2{X: 0, Y: -2}, Vec2{X: 0, Y: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.input.Normalize()
			if !almostEqualVec(got, tt.expected) {
				t.Errorf("Normalize(%v) = %v, 期望 %v", tt.input, got, tt.expected)
			}
		})
	}
}

// TestVec2RotateTowards 测试限速旋转
func TestVec2RotateTowards(t *testing.T) {
	up := Vec2{X: 0, Y: 1}
	right := Vec2{X: 1, Y: 0}

	// 一次旋转不超过 maxAngle
	got := up.RotateTowards(right, 0.05)
	if angle := math.Abs(up.AngleTo(got)); math.Abs(angle-0.05) > vecEpsilon {
		t.Errorf("rotated angle = %v, want 0.05", angle)
	}
	// 朝向右侧旋转（顺时针），X 分量应为正
	if got.X <= 0 {
		t.Errorf("expected rotation toward +X, got %v", got)
	}
	// 长度不变
	if math.Abs(got.Length()-1) > vecEpsilon {
		t.Errorf("length changed: %v", got.Length())
	}

	// 剩余角度小于 maxAngle 时直接对齐
	near := right.Rotate(0.01)
	aligned := near.RotateTowards(right, 0.05)
	if !almostEqualVec(aligned, right) {
		t.Errorf("expected to snap to target, got %v", aligned)
	}

	// 零目标不改变方向
	if got := up.RotateTowards(Vec2{}, 0.05); got != up {
		t.Errorf("zero target should not rotate, got %v", got)
	}
}

// TestVec2DistanceSquared 测试距离平方
func TestVec2DistanceSquared(t *testing.T) {
	a := Vec2{X: 1, Y: 1}
	b := Vec2{X: 4, Y: 5}
	if got := a.DistanceSquared(b); got != 25 {
		t.Errorf("DistanceSquared = %v, want 25", got)
	}
}
