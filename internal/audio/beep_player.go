package audio

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/gonewx/keepmoving/pkg/game"
)

const beepSampleRate = beep.SampleRate(SampleRate)

// BeepPlayer 基于 beep speaker 的 AudioSink，终端前端使用
//
// 所有声音混入同一个 Mixer；音乐包在 Ctrl 中以支持暂停。
type BeepPlayer struct {
	mu          sync.Mutex
	settings    *game.SettingsManager
	mixer       *beep.Mixer
	music       *beep.Ctrl
	sounds      map[game.Cue][]float64
	melody      []float64
	initialized bool
}

// NewBeepPlayer 创建播放器，调用 Initialize 前所有提示都被忽略
func NewBeepPlayer(settings *game.SettingsManager) *BeepPlayer {
	p := &BeepPlayer{
		settings: settings,
		mixer:    &beep.Mixer{},
		sounds:   make(map[game.Cue][]float64, len(cueTones)),
		melody:   renderMusic(SampleRate),
	}
	for cue, t := range cueTones {
		p.sounds[cue] = renderTone(t, SampleRate)
	}
	return p
}

// Initialize 打开音频设备
func (p *BeepPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(beepSampleRate, beepSampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play 实现 game.AudioSink
func (p *BeepPlayer) Play(cue game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	switch cue {
	case game.CueMusicStart:
		if p.music != nil {
			p.music.Paused = true
		}
		p.music = &beep.Ctrl{Streamer: beep.Loop(-1, newSampleStreamer(p.melody))}
		p.mixer.Add(withVolume(p.music, p.settings.CueVolume(cue)))
	case game.CueMusicStop:
		if p.music != nil {
			p.music.Paused = true
			// 让 Mixer 丢弃它
			p.music.Streamer = nil
			p.music = nil
		}
	case game.CueMusicPause:
		if p.music != nil {
			p.music.Paused = true
		}
	case game.CueMusicResume:
		if p.music != nil {
			p.music.Paused = false
		}
	default:
		samples, ok := p.sounds[cue]
		if !ok {
			log.Printf("[BeepPlayer] Unknown cue %v", cue)
			return
		}
		p.mixer.Add(withVolume(beep.Take(len(samples), newSampleStreamer(samples)), p.settings.CueVolume(cue)))
	}
}

// Cleanup 停止所有声音
func (p *BeepPlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.music = nil
	p.initialized = false
}

// withVolume 线性音量换算为 beep 的对数音量
func withVolume(s beep.Streamer, volume float64) *effects.Volume {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}

// sampleStreamer 播放预先合成的单声道样本
type sampleStreamer struct {
	samples []float64
	pos     int
}

func newSampleStreamer(samples []float64) *sampleStreamer {
	return &sampleStreamer{samples: samples}
}

func (s *sampleStreamer) Stream(buf [][2]float64) (int, bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	n := copy2(buf, s.samples[s.pos:])
	s.pos += n
	return n, true
}

func (s *sampleStreamer) Err() error { return nil }

func (s *sampleStreamer) Len() int { return len(s.samples) }

func (s *sampleStreamer) Position() int { return s.pos }

func (s *sampleStreamer) Seek(p int) error {
	if p < 0 || p > len(s.samples) {
		return fmt.Errorf("seek position %d out of range [0, %d]", p, len(s.samples))
	}
	s.pos = p
	return nil
}

// copy2 把单声道样本复制到两个声道
func copy2(dst [][2]float64, src []float64) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i][0] = src[i]
		dst[i][1] = src[i]
	}
	return n
}
