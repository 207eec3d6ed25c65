package systems

import (
	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/utils"
)

// BoundingCircle 由实体位置和碰撞半径得到的圆
type BoundingCircle struct {
	Center utils.Vec2
	Radius float64
}

// boundingCircle 组合位置与碰撞组件
func boundingCircle(pos *components.PositionComponent, col *components.CollisionComponent) BoundingCircle {
	return BoundingCircle{Center: utils.Vec2{X: pos.X, Y: pos.Y}, Radius: col.Radius}
}

// Intersects 两圆是否相交（相切算相交）
func (c BoundingCircle) Intersects(o BoundingCircle) bool {
	r := c.Radius + o.Radius
	return c.Center.DistanceSquared(o.Center) <= r*r
}

// AABB 轴对齐矩形
type AABB struct {
	Min utils.Vec2
	Max utils.Vec2
}

// NewAABB 由中心和半宽高构造矩形
func NewAABB(center, halfSize utils.Vec2) AABB {
	return AABB{Min: center.Sub(halfSize), Max: center.Add(halfSize)}
}

// ClosestPoint 矩形内距离 p 最近的点
func (b AABB) ClosestPoint(p utils.Vec2) utils.Vec2 {
	return utils.Vec2{
		X: min(max(p.X, b.Min.X), b.Max.X),
		Y: min(max(p.Y, b.Min.Y), b.Max.Y),
	}
}

// ContainsPoint 点是否在矩形内（含边界）
func (b AABB) ContainsPoint(p utils.Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// IntersectsCircle 圆与矩形是否相交
func (b AABB) IntersectsCircle(c BoundingCircle) bool {
	return b.ClosestPoint(c.Center).DistanceSquared(c.Center) <= c.Radius*c.Radius
}

// HalfSize 半宽高
func (b AABB) HalfSize() utils.Vec2 {
	return b.Max.Sub(b.Min).Scale(0.5)
}
