package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping frequency linearly
type oscillator struct {
	freq     float64
	sweep    float64 // Hz added over the full duration
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from startFreq to endFreq over duration
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     startFreq,
		sweep:    endFreq - startFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, zero volume maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateEatSound generates a rising two-note chime (E5 then B5)
func CreateEatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(659.25, parameter.EatSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.EatSoundNote1Duration, parameter.EatSoundAttack, parameter.EatSoundNote1Release, rate)

	n2 := NewOscillator(987.77, parameter.EatSoundNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, parameter.EatSoundNote2Duration, parameter.EatSoundAttack, parameter.EatSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.effectVolume(SoundEat))
}

// CreateGameOverSound generates a falling saw glide layered over a short noise hit
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	glide := NewSweep(440, 110, parameter.GameOverSoundDuration, WaveSaw, rate)
	glideShaped := NewEnvelope(glide, parameter.GameOverSoundDuration, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, rate)

	hit := NewOscillator(0, parameter.GameOverNoiseDuration, WaveNoise, rate)
	hitShaped := NewEnvelope(hit, parameter.GameOverNoiseDuration, 0, parameter.GameOverNoiseRelease, rate)

	mixed := beep.Mix(
		newVolume(glideShaped, 0.7),
		newVolume(hitShaped, 0.3),
	)
	return newVolume(mixed, cfg.effectVolume(SoundGameOver))
}

// CreateStartSound generates a short sine blip (A5)
func CreateStartSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(880, parameter.StartSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.StartSoundDuration, parameter.StartSoundAttack, parameter.StartSoundRelease, rate)

	return newVolume(shaped, cfg.effectVolume(SoundStart))
}

// GetSoundEffect returns the streamer for soundType, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundEat:
		return CreateEatSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	case SoundStart:
		return CreateStartSound(cfg)
	default:
		return nil
	}
}
