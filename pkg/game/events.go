package game

// Event 驱动状态转换的事件
type Event int

const (
	// EventAssetsLoaded 前端确认资源加载完成
	EventAssetsLoaded Event = iota
	// EventStart 菜单中确认开始
	EventStart
	// EventShopDone 商店结束（进入商店的同一 tick 发出）
	EventShopDone
	// EventPreparationFinished 倒计时结束
	EventPreparationFinished
	// EventWaveFinished 波次时长结束
	EventWaveFinished
	// EventCompleteFinished 波次完成的过渡结束
	EventCompleteFinished
	// EventPlayerDied 玩家死亡计时结束
	EventPlayerDied
	// EventGameOverFinished 游戏结束的过渡结束
	EventGameOverFinished
	// EventPause 暂停
	EventPause
	// EventResume 恢复
	EventResume
)

var eventNames = map[Event]string{
	EventAssetsLoaded:        "AssetsLoaded",
	EventStart:               "Start",
	EventShopDone:            "ShopDone",
	EventPreparationFinished: "PreparationFinished",
	EventWaveFinished:        "WaveFinished",
	EventCompleteFinished:    "CompleteFinished",
	EventPlayerDied:          "PlayerDied",
	EventGameOverFinished:    "GameOverFinished",
	EventPause:               "Pause",
	EventResume:              "Resume",
}

// String 返回事件名
func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "Unknown"
}

// EventQueue tick 内产生的事件队列
// 系统只负责 Push，调度器在模拟步骤之后按顺序处理
type EventQueue struct {
	events []Event
}

// Push 追加事件
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain 取出并清空所有事件
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Len 队列中的事件数
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Contains 队列中是否有指定事件（测试与调试用）
func (q *EventQueue) Contains(e Event) bool {
	for _, ev := range q.events {
		if ev == e {
			return true
		}
	}
	return false
}
