package game

// Stage is a phase of a round. Stages are strictly sequential: every
// round walks Blinds through ShowDown with no stage skipped or
// repeated.
type Stage int

const (
	Blinds Stage = iota
	Hole
	PreFlop
	Flop
	Turn
	River
	ShowDown
)

// String returns the display name of the stage.
func (s Stage) String() string {
	switch s {
	case Blinds:
		return "Blinds"
	case Hole:
		return "Hole"
	case PreFlop:
		return "Pre-Flop"
	case Flop:
		return "Flop"
	case Turn:
		return "Turn"
	case River:
		return "River"
	case ShowDown:
		return "Showdown"
	default:
		return "?"
	}
}
