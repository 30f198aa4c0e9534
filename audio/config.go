package audio

import "github.com/lixenwraith/vi-snake/parameter"

// AudioConfig holds mixer settings
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns enabled audio at moderate volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundEat:      0.6,
			SoundGameOver: 0.8,
			SoundStart:    0.3,
		},
	}
}

// effectVolume returns the final gain for s, clamped to [0,1]
func (c *AudioConfig) effectVolume(s SoundType) float64 {
	vol := c.EffectVolumes[s] * c.MasterVolume
	if vol < 0 {
		return 0
	}
	if vol > 1 {
		return 1
	}
	return vol
}
