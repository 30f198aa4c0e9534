package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 50 * time.Millisecond
)

// Eat sound: rising two-note chime
const (
	EatSoundNote1Duration = 60 * time.Millisecond
	EatSoundNote2Duration = 140 * time.Millisecond
	EatSoundAttack        = 5 * time.Millisecond
	EatSoundNote1Release  = 30 * time.Millisecond
	EatSoundNote2Release  = 110 * time.Millisecond
)

// Game over sound: falling saw with a noise burst
const (
	GameOverSoundDuration = 450 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 300 * time.Millisecond
	GameOverNoiseDuration = 120 * time.Millisecond
	GameOverNoiseRelease  = 100 * time.Millisecond
)

// Start sound: short blip on reset
const (
	StartSoundDuration = 70 * time.Millisecond
	StartSoundAttack   = 5 * time.Millisecond
	StartSoundRelease  = 40 * time.Millisecond
)
