package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/gonewx/keepmoving/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// 竞技场尺寸
const (
	// TileSize 地砖边长（像素）
	TileSize = 16.0
	// AreaTilesX, AreaTilesY 整个场地的地砖数（含装饰外圈）
	AreaTilesX = 128
	AreaTilesY = 64
	// ArenaTilesX, ArenaTilesY 可活动竞技场的地砖数
	ArenaTilesX = 48
	ArenaTilesY = 24
	// PlayerSize 玩家精灵边长（像素）
	PlayerSize = 16.0
	// BoundaryInsetFactor 可活动区域向内收缩的玩家尺寸倍数
	BoundaryInsetFactor = 1.4
)

// 玩家
const (
	PlayerMaxHealth      = 10
	PlayerRadius         = 8.0
	PlayerSpeed          = 120.0 // 像素/秒
	PlayerTurnRate       = 0.05  // 每 tick 最大转向角（弧度）
	PlayerInvincibleTime = 1.0   // 受伤后无敌时长（秒）
	PlayerDeathTime      = 1.0   // 死亡动画时长（秒）
)

// 敌人
const (
	EnemyMaxHealth = 3
	EnemyDamage    = 2
	EnemyRadius    = 8.0
	EnemySpeed     = 100.0
	EnemySpawnTime = 1.0 // 出生保护期（秒）
	EnemyDeathTime = 1.0 // 死亡动画时长（秒）
)

// 炮塔与子弹
const (
	DefenderFireInterval = 1.0 // 开火间隔（秒）
	ProjectileDamage     = 1
	ProjectileRadius     = 4.0
	ProjectileSpeed      = 120.0
	ProjectileLifetime   = 20.0 // 存活上限（秒）
)

// 波次节奏
const (
	WaveDuration           = 15.0 // 单波时长（秒）
	PreparationCountdown   = 3    // 3-2-1-Go
	PreparationStepTime    = 1.0  // 倒计时每步时长（秒）
	CompleteTransitionTime = 3.0  // 波次完成到商店的延迟（秒）
	GameOverTransitionTime = 3.0  // 游戏结束到菜单的延迟（秒）
	BaseSpawnAmount        = 1
	BaseSpawnInterval      = 5.0
	// MinSpawnInterval 刷怪间隔下限，防止高等级时间隔降到 0 或负数
	MinSpawnInterval = 0.5
	// SafeSpawnRadius 刷怪点与玩家的最小距离
	SafeSpawnRadius = 64.0
	// SpawnPositionAttempts 刷怪点拒绝采样次数
	SpawnPositionAttempts = 8
)

// 动画
const (
	AnimationFrameTime = 0.1 // 换帧间隔（秒）
)

// MaxFrameDelta 单个逻辑帧的最大步长（秒）
// 终端挂起、调试暂停等长时间卡顿后只推进这么多，避免一步越界或一次刷出整批敌人
const MaxFrameDelta = 0.25

// 精灵表帧序列
var (
	PlayerFrames        = []int{0, 1}
	EnemySpawningFrames = []int{3, 4}
	EnemyActiveFrames   = []int{0, 1}
	EnemyDeadFrames     = []int{2}
	DefenderFrames      = []int{0}
	ProjectileFrames    = []int{0}
)

// 默认刷怪公式（expr 表达式）
const (
	DefaultSpawnAmountFormula   = "baseAmount + level / 2"
	DefaultSpawnIntervalFormula = "baseInterval - level * 0.5"
)

// GameplayConfigPath 内嵌的玩法配置路径
const GameplayConfigPath = "data/gameplay.yaml"

// GameplayConfig 玩法数值配置
//
// 默认值来自本包常量，data/gameplay.yaml 可以覆盖其中任意字段。
// 配置文件位置: data/gameplay.yaml
type GameplayConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Defender   DefenderConfig   `yaml:"defender"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Wave       WaveConfig       `yaml:"wave"`
	Animation  AnimationConfig  `yaml:"animation"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// PlayerConfig 玩家数值
type PlayerConfig struct {
	MaxHealth      int     `yaml:"maxHealth"`
	Radius         float64 `yaml:"radius"`
	Speed          float64 `yaml:"speed"`
	TurnRate       float64 `yaml:"turnRate"`
	InvincibleTime float64 `yaml:"invincibleTime"`
	DeathTime      float64 `yaml:"deathTime"`
}

// EnemyConfig 敌人数值
type EnemyConfig struct {
	MaxHealth int     `yaml:"maxHealth"`
	Damage    int     `yaml:"damage"`
	Radius    float64 `yaml:"radius"`
	Speed     float64 `yaml:"speed"`
	SpawnTime float64 `yaml:"spawnTime"`
	DeathTime float64 `yaml:"deathTime"`
}

// DefenderConfig 炮塔数值
type DefenderConfig struct {
	FireInterval float64 `yaml:"fireInterval"`
}

// ProjectileConfig 子弹数值
type ProjectileConfig struct {
	Damage   int     `yaml:"damage"`
	Radius   float64 `yaml:"radius"`
	Speed    float64 `yaml:"speed"`
	Lifetime float64 `yaml:"lifetime"`
}

// WaveConfig 波次节奏与刷怪公式
type WaveConfig struct {
	Duration               float64 `yaml:"duration"`
	PreparationCountdown   int     `yaml:"preparationCountdown"`
	PreparationStepTime    float64 `yaml:"preparationStepTime"`
	CompleteTransitionTime float64 `yaml:"completeTransitionTime"`
	GameOverTransitionTime float64 `yaml:"gameOverTransitionTime"`
	BaseSpawnAmount        int     `yaml:"baseSpawnAmount"`
	BaseSpawnInterval      float64 `yaml:"baseSpawnInterval"`
	MinSpawnInterval       float64 `yaml:"minSpawnInterval"`
	SafeSpawnRadius        float64 `yaml:"safeSpawnRadius"`
	SpawnAmountFormula     string  `yaml:"spawnAmountFormula"`
	SpawnIntervalFormula   string  `yaml:"spawnIntervalFormula"`
}

// AnimationConfig 动画节奏
type AnimationConfig struct {
	FrameTime float64 `yaml:"frameTime"`
}

// SimulationConfig 模拟步进
type SimulationConfig struct {
	MaxFrameDelta float64 `yaml:"maxFrameDelta"`
}

// DefaultGameplayConfig 返回全部使用内置常量的配置
func DefaultGameplayConfig() *GameplayConfig {
	return &GameplayConfig{
		Player: PlayerConfig{
			MaxHealth:      PlayerMaxHealth,
			Radius:         PlayerRadius,
			Speed:          PlayerSpeed,
			TurnRate:       PlayerTurnRate,
			InvincibleTime: PlayerInvincibleTime,
			DeathTime:      PlayerDeathTime,
		},
		Enemy: EnemyConfig{
			MaxHealth: EnemyMaxHealth,
			Damage:    EnemyDamage,
			Radius:    EnemyRadius,
			Speed:     EnemySpeed,
			SpawnTime: EnemySpawnTime,
			DeathTime: EnemyDeathTime,
		},
		Defender: DefenderConfig{
			FireInterval: DefenderFireInterval,
		},
		Projectile: ProjectileConfig{
			Damage:   ProjectileDamage,
			Radius:   ProjectileRadius,
			Speed:    ProjectileSpeed,
			Lifetime: ProjectileLifetime,
		},
		Wave: WaveConfig{
			Duration:               WaveDuration,
			PreparationCountdown:   PreparationCountdown,
			PreparationStepTime:    PreparationStepTime,
			CompleteTransitionTime: CompleteTransitionTime,
			GameOverTransitionTime: GameOverTransitionTime,
			BaseSpawnAmount:        BaseSpawnAmount,
			BaseSpawnInterval:      BaseSpawnInterval,
			MinSpawnInterval:       MinSpawnInterval,
			SafeSpawnRadius:        SafeSpawnRadius,
			SpawnAmountFormula:     DefaultSpawnAmountFormula,
			SpawnIntervalFormula:   DefaultSpawnIntervalFormula,
		},
		Animation: AnimationConfig{
			FrameTime: AnimationFrameTime,
		},
		Simulation: SimulationConfig{
			MaxFrameDelta: MaxFrameDelta,
		},
	}
}

// LoadGameplayConfig 加载玩法配置
//
// 路径以 "data/" 开头时从内嵌资源读取，否则从磁盘读取（-config 参数）。
// 文件中未出现的字段保留默认值。
//
// 参数:
//   - filePath: 配置文件路径
//
// 返回:
//   - *GameplayConfig: 合并默认值后的配置
//   - error: 读取、解析或校验失败
func LoadGameplayConfig(filePath string) (*GameplayConfig, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(filePath, "data/") && embedded.IsInitialized() {
		data, err = embedded.ReadFile(filePath)
	} else {
		data, err = os.ReadFile(filePath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config file: %w", err)
	}

	return ParseGameplayConfig(data)
}

// ParseGameplayConfig 解析 YAML 内容并与默认值合并
func ParseGameplayConfig(data []byte) (*GameplayConfig, error) {
	cfg := DefaultGameplayConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay config YAML: %w", err)
	}

	if err := validateGameplayConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}

	return cfg, nil
}

// validateGameplayConfig 验证配置的有效性
func validateGameplayConfig(cfg *GameplayConfig) error {
	if cfg.Player.MaxHealth <= 0 {
		return fmt.Errorf("player.maxHealth must be > 0, got %d", cfg.Player.MaxHealth)
	}
	if cfg.Enemy.MaxHealth <= 0 {
		return fmt.Errorf("enemy.maxHealth must be > 0, got %d", cfg.Enemy.MaxHealth)
	}
	if cfg.Enemy.Damage < 0 {
		return fmt.Errorf("enemy.damage must be >= 0, got %d", cfg.Enemy.Damage)
	}
	if cfg.Projectile.Damage < 0 {
		return fmt.Errorf("projectile.damage must be >= 0, got %d", cfg.Projectile.Damage)
	}

	positive := map[string]float64{
		"player.radius":            cfg.Player.Radius,
		"enemy.radius":             cfg.Enemy.Radius,
		"projectile.radius":        cfg.Projectile.Radius,
		"projectile.lifetime":      cfg.Projectile.Lifetime,
		"wave.duration":            cfg.Wave.Duration,
		"wave.minSpawnInterval":    cfg.Wave.MinSpawnInterval,
		"simulation.maxFrameDelta": cfg.Simulation.MaxFrameDelta,
	}

	for name, v := range positive {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be > 0, got %v", name, v)
		}
	}

	nonNegative := map[string]float64{
		"player.speed":                cfg.Player.Speed,
		"player.turnRate":             cfg.Player.TurnRate,
		"enemy.speed":                 cfg.Enemy.Speed,
		"projectile.speed":            cfg.Projectile.Speed,
		"wave.safeSpawnRadius":        cfg.Wave.SafeSpawnRadius,
		"player.invincibleTime":       cfg.Player.InvincibleTime,
		"player.deathTime":            cfg.Player.DeathTime,
		"enemy.spawnTime":             cfg.Enemy.SpawnTime,
		"enemy.deathTime":             cfg.Enemy.DeathTime,
		"defender.fireInterval":       cfg.Defender.FireInterval,
		"wave.preparationStepTime":    cfg.Wave.PreparationStepTime,
		"wave.completeTransitionTime": cfg.Wave.CompleteTransitionTime,
		"wave.gameOverTransitionTime": cfg.Wave.GameOverTransitionTime,
		"animation.frameTime":         cfg.Animation.FrameTime,
	}
	for name, v := range nonNegative {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be >= 0, got %v", name, v)
		}
	}

	if cfg.Wave.PreparationCountdown < 0 {
		return fmt.Errorf("wave.preparationCountdown must be >= 0, got %d", cfg.Wave.PreparationCountdown)
	}

	// 刷怪公式必须能编译
	if _, err := NewWaveFormula(cfg.Wave); err != nil {
		return err
	}

	return nil
}
