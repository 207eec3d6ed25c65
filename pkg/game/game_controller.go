package game

import (
	"log"

	"github.com/google/uuid"
)

// GameController 一局游戏（从菜单开始到回到菜单）的进度
//
// 波次等级在每次进入商店时加一；新的一局重置等级并分配新的 run id，
// run id 只用于把同一局的日志串起来。
type GameController struct {
	level    int
	runID    string
	runCount int
}

// NewGameController 创建控制器，尚未开始任何一局
func NewGameController() *GameController {
	return &GameController{}
}

// StartRun 开始新的一局
func (gc *GameController) StartRun() {
	gc.level = 0
	gc.runID = uuid.NewString()
	gc.runCount++
	log.Printf("[GameController] Run %s started (#%d)", gc.runID, gc.runCount)
}

// EndRun 一局结束（回到菜单）
func (gc *GameController) EndRun() {
	log.Printf("[GameController] Run %s ended at wave %d", gc.runID, gc.level+1)
}

// AdvanceLevel 进入商店时提升波次等级
func (gc *GameController) AdvanceLevel() int {
	gc.level++
	log.Printf("[GameController] Run %s advanced to level %d", gc.runID, gc.level)
	return gc.level
}

// Level 当前波次等级（从 0 开始，HUD 显示为 Level+1）
func (gc *GameController) Level() int {
	return gc.level
}

// RunID 当前一局的标识
func (gc *GameController) RunID() string {
	return gc.runID
}

// RunCount 已开始的局数
func (gc *GameController) RunCount() int {
	return gc.runCount
}
