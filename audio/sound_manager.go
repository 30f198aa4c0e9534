package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/parameter"
)

// SoundManager plays game cues through a beep mixer
// Every method is safe to call before Initialize or after Cleanup, they do nothing
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	played [soundTypeCount]int
}

// NewSoundManager creates a sound manager, nil cfg selects the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		muted: !cfg.Enabled,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer, beep has no speaker close so the device stays open
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// Play queues a sound effect onto the mixer
func (sm *SoundManager) Play(s SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	streamer := GetSoundEffect(s, sm.cfg)
	if streamer == nil {
		log.Printf("[WARN] Unknown sound type %d", int(s))
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()

	sm.played[s]++
}

func (sm *SoundManager) PlayEat() {
	sm.Play(SoundEat)
}

func (sm *SoundManager) PlayGameOver() {
	sm.Play(SoundGameOver)
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Played returns how many times s reached the mixer
func (sm *SoundManager) Played(s SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if s < 0 || s >= soundTypeCount {
		return 0
	}
	return sm.played[s]
}

// OnReset plays the start blip
func (sm *SoundManager) OnReset(string, game.Snapshot) {
	sm.Play(SoundStart)
}

// OnStep maps step outcomes to cues
func (sm *SoundManager) OnStep(result game.StepResult, _ game.Snapshot) {
	switch result.Outcome {
	case game.OutcomeConsumed:
		sm.PlayEat()
	case game.OutcomeEnded:
		sm.PlayGameOver()
	}
}
