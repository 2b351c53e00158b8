package loop

// Phase is the coarse lifecycle state of a game. The loop stores it and
// reports changes; games decide when to move between phases.
type Phase uint8

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}
