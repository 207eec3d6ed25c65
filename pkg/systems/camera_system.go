package systems

import (
	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/ecs"
)

// CameraSystem 管理镜头位置
// 镜头实体常驻，不属于任何作用域；波次中跟随玩家，离开波次后回到原点
type CameraSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID // 镜头实体ID
}

// NewCameraSystem 创建镜头控制系统。
func NewCameraSystem(em *ecs.EntityManager) *CameraSystem {
	cs := &CameraSystem{
		entityManager: em,
	}

	// 创建镜头实体
	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{})

	return cs
}

// Follow 设置跟随目标
func (cs *CameraSystem) Follow(target ecs.EntityID) {
	if cam := cs.camera(); cam != nil {
		cam.Target = target
	}
}

// Reset 停止跟随并回到原点
func (cs *CameraSystem) Reset() {
	if cam := cs.camera(); cam != nil {
		cam.X, cam.Y = 0, 0
		cam.Target = ecs.InvalidEntity
	}
}

// Update 镜头中心对齐目标
// 目标已被删除时保持最后的位置
func (cs *CameraSystem) Update(dt float64) {
	cam := cs.camera()
	if cam == nil || cam.Target == ecs.InvalidEntity {
		return
	}
	if pos, ok := entityPosition(cs.entityManager, cam.Target); ok {
		cam.X, cam.Y = pos.X, pos.Y
	}
}

// Position 镜头中心（世界坐标）
func (cs *CameraSystem) Position() (x, y float64) {
	if cam := cs.camera(); cam != nil {
		return cam.X, cam.Y
	}
	return 0, 0
}

func (cs *CameraSystem) camera() *components.CameraComponent {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return nil
	}
	return cam
}
