package components

// PositionComponent 实体在竞技场中的世界坐标（像素，Y 轴向上）
type PositionComponent struct {
	X float64
	Y float64
}
