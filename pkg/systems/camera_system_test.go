package systems

import (
	"testing"

	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/ecs"
)

// TestCameraSystem_NewCameraSystem 测试镜头系统的创建
func TestCameraSystem_NewCameraSystem(t *testing.T) {
	em := ecs.NewEntityManager()
	cs := NewCameraSystem(em)

	// 验证镜头实体已创建
	if cs.cameraEntity == ecs.InvalidEntity {
		t.Fatal("Camera entity not created")
	}
	if _, ok := ecs.GetComponent[*components.CameraComponent](em, cs.cameraEntity); !ok {
		t.Fatal("CameraComponent not added to camera entity")
	}
	if x, y := cs.Position(); x != 0 || y != 0 {
		t.Errorf("Expected camera at origin, got (%.0f, %.0f)", x, y)
	}
}

// TestCameraSystem_Follow 测试镜头跟随
func TestCameraSystem_Follow(t *testing.T) {
	w := newTestWorld()
	cs := NewCameraSystem(w.em)
	player := w.spawnPlayerAt(30, -40)

	cs.Follow(player)
	cs.Update(0.016)
	if x, y := cs.Position(); x != 30 || y != -40 {
		t.Errorf("camera at (%v, %v), want (30, -40)", x, y)
	}

	// 目标删除后保持最后位置
	w.em.DestroyEntity(player)
	w.em.RemoveMarkedEntities()
	cs.Update(0.016)
	if x, y := cs.Position(); x != 30 || y != -40 {
		t.Errorf("camera moved after target removal: (%v, %v)", x, y)
	}

	cs.Reset()
	if x, y := cs.Position(); x != 0 || y != 0 {
		t.Errorf("Reset should return to origin, got (%v, %v)", x, y)
	}
}
