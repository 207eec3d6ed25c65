package config

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// WaveFormulaEnv 刷怪公式可以引用的变量
type WaveFormulaEnv struct {
	Level        int     `expr:"level"`
	BaseAmount   int     `expr:"baseAmount"`
	BaseInterval float64 `expr:"baseInterval"`
}

// WaveFormula 按波次等级计算刷怪数量和刷怪间隔
//
// 两个表达式在创建时编译一次，之后每个波次只运行编译结果。
// 数量结果向零截断（level >= 0 时等价于整数除法），
// 间隔结果被限制在 MinSpawnInterval 以上。
type WaveFormula struct {
	amountProgram    *vm.Program
	intervalProgram  *vm.Program
	baseAmount       int
	baseInterval     float64
	minSpawnInterval float64
}

// NewWaveFormula 编译波次配置中的刷怪公式
//
// 公式为空时使用默认公式。
func NewWaveFormula(cfg WaveConfig) (*WaveFormula, error) {
	amountSrc := cfg.SpawnAmountFormula
	if amountSrc == "" {
		amountSrc = DefaultSpawnAmountFormula
	}
	intervalSrc := cfg.SpawnIntervalFormula
	if intervalSrc == "" {
		intervalSrc = DefaultSpawnIntervalFormula
	}

	amountProgram, err := expr.Compile(amountSrc, expr.Env(WaveFormulaEnv{}), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("failed to compile spawnAmountFormula %q: %w", amountSrc, err)
	}
	intervalProgram, err := expr.Compile(intervalSrc, expr.Env(WaveFormulaEnv{}), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("failed to compile spawnIntervalFormula %q: %w", intervalSrc, err)
	}

	minInterval := cfg.MinSpawnInterval
	if !(minInterval > 0) {
		minInterval = MinSpawnInterval
	}

	return &WaveFormula{
		amountProgram:    amountProgram,
		intervalProgram:  intervalProgram,
		baseAmount:       cfg.BaseSpawnAmount,
		baseInterval:     cfg.BaseSpawnInterval,
		minSpawnInterval: minInterval,
	}, nil
}

// SpawnAmount 每次刷怪的数量（不小于 0）
// 公式运行失败时退回基础数量
func (f *WaveFormula) SpawnAmount(level int) int {
	v, err := f.run(f.amountProgram, level)
	if err != nil || math.IsNaN(v) {
		return max(f.baseAmount, 0)
	}
	if v < 0 {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

// SpawnInterval 刷怪间隔（秒），不低于最小间隔
func (f *WaveFormula) SpawnInterval(level int) float64 {
	v, err := f.run(f.intervalProgram, level)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		v = f.baseInterval
	}
	if v < f.minSpawnInterval {
		return f.minSpawnInterval
	}
	return v
}

// MinSpawnInterval 返回间隔下限
func (f *WaveFormula) MinSpawnInterval() float64 {
	return f.minSpawnInterval
}

func (f *WaveFormula) run(program *vm.Program, level int) (float64, error) {
	out, err := expr.Run(program, WaveFormulaEnv{
		Level:        level,
		BaseAmount:   f.baseAmount,
		BaseInterval: f.baseInterval,
	})
	if err != nil {
		return 0, err
	}
	v, ok := out.(float64)
	if !ok {
		return 0, fmt.Errorf("formula returned %T, want float64", out)
	}
	return v, nil
}
