package config

import "testing"

func defaultFormula(t *testing.T) *WaveFormula {
	t.Helper()
	f, err := NewWaveFormula(DefaultGameplayConfig().Wave)
	if err != nil {
		t.Fatalf("NewWaveFormula error: %v", err)
	}
	return f
}

// TestWaveFormulaDefaults 测试默认公式的刷怪数量和间隔
func TestWaveFormulaDefaults(t *testing.T) {
	f := defaultFormula(t)

	tests := []struct {
		level        int
		wantAmount   int
		wantInterval float64
	}{
		{0, 1, 5.0},
		{1, 1, 4.5},
		{2, 2, 4.0},
		{3, 2, 3.5},
		{4, 3, 3.0},
		{8, 5, 1.0},
	}

	for _, tt := range tests {
		if got := f.SpawnAmount(tt.level); got != tt.wantAmount {
			t.Errorf("SpawnAmount(%d) = %d, want %d", tt.level, got, tt.wantAmount)
		}
		if got := f.SpawnInterval(tt.level); got != tt.wantInterval {
			t.Errorf("SpawnInterval(%d) = %v, want %v", tt.level, got, tt.wantInterval)
		}
	}
}

// TestWaveFormulaIntervalFloor 测试高等级时间隔不低于下限
func TestWaveFormulaIntervalFloor(t *testing.T) {
	f := defaultFormula(t)

	for _, level := range []int{9, 10, 11, 50, 1000} {
		got := f.SpawnInterval(level)
		if got < MinSpawnInterval {
			t.Errorf("SpawnInterval(%d) = %v, below floor %v", level, got, MinSpawnInterval)
		}
		if got <= 0 {
			t.Errorf("SpawnInterval(%d) = %v, must be positive", level, got)
		}
	}
	if got := f.SpawnInterval(10); got != MinSpawnInterval {
		t.Errorf("SpawnInterval(10) = %v, want clamped %v", got, MinSpawnInterval)
	}
}

// TestWaveFormulaCustom 测试自定义公式
func TestWaveFormulaCustom(t *testing.T) {
	cfg := DefaultGameplayConfig().Wave
	cfg.SpawnAmountFormula = "baseAmount * 2 + level"
	cfg.SpawnIntervalFormula = "baseInterval / (level + 1)"
	cfg.MinSpawnInterval = 1.0

	f, err := NewWaveFormula(cfg)
	if err != nil {
		t.Fatalf("NewWaveFormula error: %v", err)
	}

	if got := f.SpawnAmount(3); got != 5 {
		t.Errorf("SpawnAmount(3) = %d, want 5", got)
	}
	if got := f.SpawnInterval(1); got != 2.5 {
		t.Errorf("SpawnInterval(1) = %v, want 2.5", got)
	}
	if got := f.SpawnInterval(9); got != 1.0 {
		t.Errorf("SpawnInterval(9) = %v, want clamped 1.0", got)
	}
}

// TestWaveFormulaNegativeAmount 测试数量公式结果为负时按 0 处理
func TestWaveFormulaNegativeAmount(t *testing.T) {
	cfg := DefaultGameplayConfig().Wave
	cfg.SpawnAmountFormula = "baseAmount - level"

	f, err := NewWaveFormula(cfg)
	if err != nil {
		t.Fatalf("NewWaveFormula error: %v", err)
	}
	if got := f.SpawnAmount(5); got != 0 {
		t.Errorf("SpawnAmount(5) = %d, want 0", got)
	}
}
