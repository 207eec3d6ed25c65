package utils

import "math"

// Vec2 二维向量（世界坐标，Y 轴向上）
// 用于位置、方向以及碰撞体中心的计算
type Vec2 struct {
	X float64
	Y float64
}

// 常用向量
var (
	Vec2Zero = Vec2{}
	Vec2Up   = Vec2{X: 0, Y: 1}
)

// Add 向量加法
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 向量减法
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 数乘
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot 点积
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross 二维叉积（标量），符号表示 o 相对 v 的旋转方向
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Length 向量长度
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSquared 长度平方（比较距离时避免开方）
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// DistanceSquared 两点距离平方
func (v Vec2) DistanceSquared(o Vec2) float64 {
	return v.Sub(o).LengthSquared()
}

// IsZero 是否为零向量
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize 返回单位向量
// 零向量（或长度非有限值）返回零向量，调用方无需额外判断
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return Vec2Zero
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// AngleTo 从 v 旋转到 o 的有符号角度（弧度，范围 [-π, π]）
func (v Vec2) AngleTo(o Vec2) float64 {
	return math.Atan2(v.Cross(o), v.Dot(o))
}

// Rotate 按弧度逆时针旋转
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// RotateTowards 将 v 朝 target 方向旋转，单次最多旋转 maxAngle 弧度
// 长度保持不变；maxAngle 为负时表示远离 target
func (v Vec2) RotateTowards(target Vec2, maxAngle float64) Vec2 {
	if v.IsZero() || target.IsZero() {
		return v
	}
	angle := v.AngleTo(target)
	limit := math.Abs(maxAngle)
	if angle > limit {
		angle = limit
	} else if angle < -limit {
		angle = -limit
	}
	if maxAngle < 0 {
		angle = -angle
	}
	return v.Rotate(angle)
}

// Angle 向量相对 +Y 轴的朝向角（弧度），用于投射物朝向渲染
func (v Vec2) Angle() float64 {
	return Vec2Up.AngleTo(v)
}
