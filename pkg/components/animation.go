package components

// AnimationComponent 简单帧动画
// 按固定间隔在 Frames 中循环，渲染端只读取当前帧索引
type AnimationComponent struct {
	Frames     []int          // 当前动画序列（精灵表中的帧索引）
	Index      int            // 当前序列位置
	FrameTimer TimerComponent // 换帧计时器（重复）
}
