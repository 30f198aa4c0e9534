package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat      SoundType = iota // Target consumed
	SoundGameOver                  // Wall or self collision
	SoundStart                     // New run
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundGameOver:
		return "gameover"
	case SoundStart:
		return "start"
	}
	return "unknown"
}
