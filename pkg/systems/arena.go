package systems

import (
	"math/rand/v2"
	"slices"

	"github.com/gonewx/keepmoving/pkg/config"
	"github.com/gonewx/keepmoving/pkg/utils"
)

// 地砖编号（地形精灵表 4x4）
const (
	TileOutside = 10

	TileCornerBottomLeft  = 12
	TileCornerTopLeft     = 0
	TileCornerBottomRight = 15
	TileCornerTopRight    = 3
)

var (
	tilesLeftEdge   = []int{4, 8}
	tilesRightEdge  = []int{7, 11}
	tilesBottomEdge = []int{13, 14}
	tilesTopEdge    = []int{1, 2}
	tilesInterior   = []int{5, 6, 9}
)

// TileRect 地砖坐标矩形（闭区间）
type TileRect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Contains 地砖是否在矩形内
func (r TileRect) Contains(x, y int) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Arena 竞技场几何
//
// 世界坐标原点在竞技场中心，Y 轴向上。
// Playable 是玩家可以停留的区域：竞技场半宽高减去 PlayerSize * BoundaryInsetFactor。
type Arena struct {
	Playable AABB
	Area     TileRect // 竞技场在整个地砖网格中的位置
}

// NewArena 按配置常量构造竞技场
func NewArena() *Arena {
	centerX, centerY := config.AreaTilesX/2, config.AreaTilesY/2
	halfX, halfY := config.ArenaTilesX/2, config.ArenaTilesY/2

	inset := config.PlayerSize * config.BoundaryInsetFactor
	half := utils.Vec2{
		X: float64(halfX)*config.TileSize - inset,
		Y: float64(halfY)*config.TileSize - inset,
	}

	return &Arena{
		Playable: NewAABB(utils.Vec2Zero, half),
		Area: TileRect{
			MinX: centerX - halfX,
			MinY: centerY - halfY,
			MaxX: centerX + halfX,
			MaxY: centerY + halfY,
		},
	}
}

// Contains 圆是否仍与可活动区域相交
func (a *Arena) Contains(c BoundingCircle) bool {
	return a.Playable.IntersectsCircle(c)
}

// RandomPosition 可活动区域内的均匀随机点
func (a *Arena) RandomPosition(rng *rand.Rand) utils.Vec2 {
	return utils.Vec2{
		X: a.Playable.Min.X + rng.Float64()*(a.Playable.Max.X-a.Playable.Min.X),
		Y: a.Playable.Min.Y + rng.Float64()*(a.Playable.Max.Y-a.Playable.Min.Y),
	}
}

// SpawnPosition 刷怪点
// 拒绝采样最多 config.SpawnPositionAttempts 次，尽量离 avoid 至少 safeRadius；
// 全部失败时使用最后一次采样
func (a *Arena) SpawnPosition(rng *rand.Rand, avoid *utils.Vec2, safeRadius float64) utils.Vec2 {
	p := a.RandomPosition(rng)
	if avoid == nil || safeRadius <= 0 {
		return p
	}
	safe := safeRadius * safeRadius
	for i := 1; i < config.SpawnPositionAttempts && p.DistanceSquared(*avoid) < safe; i++ {
		p = a.RandomPosition(rng)
	}
	return p
}

// GenerateTiles 生成整个场地的地砖编号，tiles[y][x]，y=0 为最下方一行
// 竞技场外圈使用边和角的地砖，内部随机选取，竞技场外为 TileOutside
func (a *Arena) GenerateTiles(rng *rand.Rand) [][]int {
	tiles := make([][]int, config.AreaTilesY)
	for y := range tiles {
		tiles[y] = make([]int, config.AreaTilesX)
		for x := range tiles[y] {
			tiles[y][x] = a.tileIndex(rng, x, y)
		}
	}
	return tiles
}

func (a *Arena) tileIndex(rng *rand.Rand, x, y int) int {
	r := a.Area
	if !r.Contains(x, y) {
		return TileOutside
	}

	pick := func(set []int) int { return set[rng.IntN(len(set))] }

	switch {
	case x == r.MinX && y == r.MinY:
		return TileCornerBottomLeft
	case x == r.MinX && y == r.MaxY:
		return TileCornerTopLeft
	case x == r.MinX:
		return pick(tilesLeftEdge)
	case x == r.MaxX && y == r.MinY:
		return TileCornerBottomRight
	case x == r.MaxX && y == r.MaxY:
		return TileCornerTopRight
	case x == r.MaxX:
		return pick(tilesRightEdge)
	case y == r.MinY:
		return pick(tilesBottomEdge)
	case y == r.MaxY:
		return pick(tilesTopEdge)
	default:
		return pick(tilesInterior)
	}
}

// IsInteriorTile 地砖编号是否属于竞技场内部（非边、非角、非场外）
func IsInteriorTile(tile int) bool {
	return slices.Contains(tilesInterior, tile)
}
