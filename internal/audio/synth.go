// Package audio 提供 game.AudioSink 的两种实现
//
// 游戏没有音频资源文件，所有提示音都由简单的波形合成：
//   - EbitenPlayer: 桌面端，使用 ebiten 的音频上下文
//   - BeepPlayer: 终端端，使用 beep 的 speaker
package audio

import (
	"math"
	"time"

	"github.com/gonewx/keepmoving/pkg/game"
)

// SampleRate 合成采样率
const SampleRate = 48000

type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveTriangle
)

// tone 一次性音效
type tone struct {
	Freq     float64
	Duration time.Duration
	Wave     waveform
	Gain     float64
}

var cueTones = map[game.Cue]tone{
	game.CueCountdown: {Freq: 660, Duration: 120 * time.Millisecond, Wave: waveSquare, Gain: 0.25},
	game.CueFire:      {Freq: 880, Duration: 40 * time.Millisecond, Wave: waveTriangle, Gain: 0.2},
	game.CueHit:       {Freq: 220, Duration: 70 * time.Millisecond, Wave: waveSquare, Gain: 0.25},
	game.CueHurt:      {Freq: 110, Duration: 200 * time.Millisecond, Wave: waveSquare, Gain: 0.3},
}

// 波次音乐：一段循环的琶音
var musicNotes = []float64{262, 330, 392, 523, 392, 330}

const (
	musicNoteLength = 250 * time.Millisecond
	musicGain       = 0.12
	// edgeLength 每个音符首尾的线性淡入淡出，避免爆音
	edgeLength = 5 * time.Millisecond
)

func samplesFor(d time.Duration, rate int) int {
	return int(d.Seconds() * float64(rate))
}

// oscillate 相位 phase ∈ [0, 1) 处的波形值
func oscillate(w waveform, phase float64) float64 {
	switch w {
	case waveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case waveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// edgeEnvelope 第 i 个样本（共 n 个）的包络
func edgeEnvelope(i, n, edge int) float64 {
	if edge <= 0 {
		return 1
	}
	if i < edge {
		return float64(i) / float64(edge)
	}
	if tail := n - 1 - i; tail < edge {
		return float64(tail) / float64(edge)
	}
	return 1
}

// renderTone 渲染单声道样本
func renderTone(t tone, rate int) []float64 {
	n := samplesFor(t.Duration, rate)
	edge := samplesFor(edgeLength, rate)
	out := make([]float64, n)
	phase := 0.0
	for i := range out {
		out[i] = t.Gain * edgeEnvelope(i, n, edge) * oscillate(t.Wave, phase)
		phase += t.Freq / float64(rate)
		phase -= math.Floor(phase)
	}
	return out
}

// renderMusic 渲染一个完整的旋律循环
func renderMusic(rate int) []float64 {
	var out []float64
	for _, freq := range musicNotes {
		out = append(out, renderTone(tone{
			Freq:     freq,
			Duration: musicNoteLength,
			Wave:     waveTriangle,
			Gain:     musicGain,
		}, rate)...)
	}
	return out
}

// encodePCM16 单声道样本编码为 16 位小端立体声
func encodePCM16(samples []float64) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		s = math.Max(-1, math.Min(1, s))
		v := int16(s * math.MaxInt16)
		out[4*i] = byte(v)
		out[4*i+1] = byte(v >> 8)
		out[4*i+2] = byte(v)
		out[4*i+3] = byte(v >> 8)
	}
	return out
}
