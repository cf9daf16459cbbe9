package model

// FlowState is one of the nineteen states in the game flow state machine
// (spec §4.10). Transitions are driven by internal/flow; Game.State simply
// records where the simulation currently sits so SimulateGame can resume a
// step loop.
type FlowState int

const (
	PreGame FlowState = iota
	CoinToss
	Kickoff
	PrePlay
	Snap
	PlayRunState
	PlayPassState
	PlayFieldGoalState
	PlayPuntState
	PostPlay
	QuarterExpired
	Halftime
	EndOfRegulation
	OvertimeCoinToss
	OvertimeKickoff
	OvertimePrePlay
	OvertimeSnap
	OvertimePlay
	OvertimePostPlay
	PostGame
)

func (s FlowState) String() string {
	switch s {
	case PreGame:
		return "PreGame"
	case CoinToss:
		return "CoinToss"
	case Kickoff:
		return "Kickoff"
	case PrePlay:
		return "PrePlay"
	case Snap:
		return "Snap"
	case PlayRunState:
		return "Play-Run"
	case PlayPassState:
		return "Play-Pass"
	case PlayFieldGoalState:
		return "Play-FG"
	case PlayPuntState:
		return "Play-Punt"
	case PostPlay:
		return "PostPlay"
	case QuarterExpired:
		return "QuarterExpired"
	case Halftime:
		return "Halftime"
	case EndOfRegulation:
		return "EndOfRegulation"
	case OvertimeCoinToss:
		return "OvertimeCoinToss"
	case OvertimeKickoff:
		return "OvertimeKickoff"
	case OvertimePrePlay:
		return "OvertimePrePlay"
	case OvertimeSnap:
		return "OvertimeSnap"
	case OvertimePlay:
		return "OvertimePlay"
	case OvertimePostPlay:
		return "OvertimePostPlay"
	case PostGame:
		return "PostGame"
	default:
		return "Unknown"
	}
}
