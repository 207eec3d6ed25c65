package game

// StateNode 状态树中的节点
type StateNode int

const (
	NodeLoading StateNode = iota
	NodeMenu
	NodeGame
	NodeShop
	NodeWave
	NodePreparation
	NodeRunning
	NodeComplete
	NodeGameOver
	NodePaused
)

var nodeNames = [...]string{
	NodeLoading:     "Loading",
	NodeMenu:        "Menu",
	NodeGame:        "Game",
	NodeShop:        "Shop",
	NodeWave:        "Wave",
	NodePreparation: "Preparation",
	NodeRunning:     "Running",
	NodeComplete:    "Complete",
	NodeGameOver:    "GameOver",
	NodePaused:      "Paused",
}

// String 返回节点名
func (n StateNode) String() string {
	if n >= 0 && int(n) < len(nodeNames) {
		return nodeNames[n]
	}
	return "Unknown"
}

// EffectKind 副作用类型
type EffectKind int

const (
	// EffectExit 离开节点：清理该节点作用域内的实体
	EffectExit EffectKind = iota
	// EffectEnter 进入节点：创建该节点需要的实体与控制器
	EffectEnter
)

// Effect 状态转换产生的进入/离开描述
// 转换函数只描述副作用，由调度器执行
type Effect struct {
	Kind EffectKind
	Node StateNode
}

// Enter 构造进入副作用
func Enter(n StateNode) Effect { return Effect{Kind: EffectEnter, Node: n} }

// Exit 构造离开副作用
func Exit(n StateNode) Effect { return Effect{Kind: EffectExit, Node: n} }

// String 如 "enter:Running"
func (e Effect) String() string {
	if e.Kind == EffectEnter {
		return "enter:" + e.Node.String()
	}
	return "exit:" + e.Node.String()
}
