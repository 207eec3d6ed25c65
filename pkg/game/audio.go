package game

// Cue 音频提示
// 模拟核心只发出提示，由前端的播放器决定如何发声
type Cue int

const (
	// CueMusicStart 进入 Game.Wave，开始波次音乐
	CueMusicStart Cue = iota
	// CueMusicStop 离开 Game.Wave，停止波次音乐
	CueMusicStop
	// CueMusicPause 暂停时挂起音乐
	CueMusicPause
	// CueMusicResume 恢复时继续音乐
	CueMusicResume
	// CueCountdown 倒计时每一步
	CueCountdown
	// CueFire 炮塔开火
	CueFire
	// CueHit 子弹命中敌人
	CueHit
	// CueHurt 玩家受伤
	CueHurt
)

var cueNames = [...]string{
	CueMusicStart:  "music_start",
	CueMusicStop:   "music_stop",
	CueMusicPause:  "music_pause",
	CueMusicResume: "music_resume",
	CueCountdown:   "countdown",
	CueFire:        "fire",
	CueHit:         "hit",
	CueHurt:        "hurt",
}

// String 返回提示名
func (c Cue) String() string {
	if c >= 0 && int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

// IsMusic 是否为音乐控制提示（其余为一次性音效）
func (c Cue) IsMusic() bool {
	return c <= CueMusicResume
}

// AudioSink 音频协作者
type AudioSink interface {
	Play(cue Cue)
}

// NopAudioSink 丢弃所有提示（无音频设备或测试时使用）
type NopAudioSink struct{}

// Play 实现 AudioSink
func (NopAudioSink) Play(Cue) {}
