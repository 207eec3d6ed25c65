package components

import "github.com/gonewx/keepmoving/pkg/ecs"

// CameraComponent 镜头
// 波次进行时镜头中心跟随目标实体，渲染端据此计算屏幕偏移
type CameraComponent struct {
	X, Y   float64      // 镜头中心（世界坐标）
	Target ecs.EntityID // 跟随的实体，InvalidEntity 表示不跟随
}
