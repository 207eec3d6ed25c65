package components

import "github.com/gonewx/keepmoving/pkg/utils"

// MovementComponent 移动方向与速度
// 方向为单位向量或零向量，每 tick 由行为系统重新计算；
// MovementSystem 按 position += direction * speed * dt 积分
type MovementComponent struct {
	Direction utils.Vec2 // 当前朝向（单位向量，可为零）
	Speed     float64    // 速度（像素/秒）
}
