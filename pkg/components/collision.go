package components

// CollisionComponent 圆形碰撞体
// 圆心即实体位置，用于子弹与敌人、敌人与玩家的重叠检测
type CollisionComponent struct {
	Radius float64 // 半径（像素）
}
