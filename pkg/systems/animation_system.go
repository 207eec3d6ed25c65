package systems

import (
	"slices"

	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/ecs"
)

// AnimationSystem 管理所有实体的帧动画
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建一个新的动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
	}
}

// Update 更新所有动画实体的帧
// 换帧计时器一次跨越多个周期时，按完成次数一次性前进
func (s *AnimationSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.AnimationComponent](s.entityManager) {
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)

		// 如果没有帧,跳过
		if len(anim.Frames) == 0 {
			continue
		}

		steps := TickTimer(&anim.FrameTimer, deltaTime)
		if steps == 0 {
			continue
		}
		anim.Index = (anim.Index + steps) % len(anim.Frames)
	}
}

// SetAnimationFrames 切换动画序列
// 序列相同时不打断当前播放；不同时从第一帧重新开始
func SetAnimationFrames(anim *components.AnimationComponent, frames []int) {
	if slices.Equal(anim.Frames, frames) {
		return
	}
	anim.Frames = slices.Clone(frames)
	anim.Index = 0
	ResetTimer(&anim.FrameTimer)
}

// CurrentFrame 当前帧的精灵索引，没有帧时返回 -1
func CurrentFrame(anim *components.AnimationComponent) int {
	if len(anim.Frames) == 0 {
		return -1
	}
	return anim.Frames[anim.Index%len(anim.Frames)]
}
