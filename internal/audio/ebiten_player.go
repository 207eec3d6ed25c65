package audio

import (
	"bytes"
	"fmt"
	"log"

	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/gonewx/keepmoving/pkg/game"
)

// EbitenPlayer 基于 ebiten 音频上下文的 AudioSink
//
// 音效播放器按提示缓存，重复播放时回卷；
// 波次音乐是一个无限循环的播放器，开始时从头播放。
type EbitenPlayer struct {
	context  *ebitenaudio.Context
	settings *game.SettingsManager

	sounds       map[game.Cue][]byte
	soundPlayers map[game.Cue]*ebitenaudio.Player
	music        *ebitenaudio.Player
	musicOn      bool
}

// NewEbitenPlayer 预先合成所有提示音
// ctx 的采样率必须是 SampleRate；settings 可为 nil（使用默认音量）
func NewEbitenPlayer(ctx *ebitenaudio.Context, settings *game.SettingsManager) (*EbitenPlayer, error) {
	if ctx.SampleRate() != SampleRate {
		return nil, fmt.Errorf("audio context sample rate %d, want %d", ctx.SampleRate(), SampleRate)
	}

	p := &EbitenPlayer{
		context:      ctx,
		settings:     settings,
		sounds:       make(map[game.Cue][]byte, len(cueTones)),
		soundPlayers: make(map[game.Cue]*ebitenaudio.Player, len(cueTones)),
	}
	for cue, t := range cueTones {
		p.sounds[cue] = encodePCM16(renderTone(t, SampleRate))
	}

	pcm := encodePCM16(renderMusic(SampleRate))
	loop := ebitenaudio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	music, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create music player: %w", err)
	}
	p.music = music
	return p, nil
}

// Play 实现 game.AudioSink
func (p *EbitenPlayer) Play(cue game.Cue) {
	switch cue {
	case game.CueMusicStart:
		p.musicOn = true
		if err := p.music.Rewind(); err != nil {
			log.Printf("[EbitenPlayer] Warning: Failed to rewind music: %v", err)
		}
		p.resumeMusic()
	case game.CueMusicStop:
		p.musicOn = false
		p.music.Pause()
	case game.CueMusicPause:
		p.music.Pause()
	case game.CueMusicResume:
		if p.musicOn {
			p.resumeMusic()
		}
	default:
		p.playSound(cue)
	}
}

func (p *EbitenPlayer) resumeMusic() {
	volume := p.settings.CueVolume(game.CueMusicStart)
	if volume == 0 {
		return
	}
	p.music.SetVolume(volume)
	p.music.Play()
}

func (p *EbitenPlayer) playSound(cue game.Cue) {
	volume := p.settings.CueVolume(cue)
	if volume == 0 {
		return
	}

	player, ok := p.soundPlayers[cue]
	if !ok {
		pcm, known := p.sounds[cue]
		if !known {
			log.Printf("[EbitenPlayer] Unknown cue %v", cue)
			return
		}
		player = p.context.NewPlayerFromBytes(pcm)
		p.soundPlayers[cue] = player
	}

	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[EbitenPlayer] Warning: Failed to rewind %v: %v", cue, err)
	}
	player.Play()
}

// Close 停止音乐并释放播放器
func (p *EbitenPlayer) Close() {
	p.musicOn = false
	if err := p.music.Close(); err != nil {
		log.Printf("[EbitenPlayer] Warning: Failed to close music player: %v", err)
	}
	for cue, player := range p.soundPlayers {
		if err := player.Close(); err != nil {
			log.Printf("[EbitenPlayer] Warning: Failed to close %v: %v", cue, err)
		}
	}
	clear(p.soundPlayers)
}
