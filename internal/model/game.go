package model

import "github.com/google/uuid"

// CoinTossResult records the coin toss outcome (spec §3).
type CoinTossResult struct {
	Winner   Possession
	Deferred bool
}

// Game exclusively owns the mutable game state described in spec §3. Only
// the single simulation run that created it may mutate it.
type Game struct {
	ID uuid.UUID

	Home *Team
	Away *Team

	Config *Configuration

	State FlowState

	FieldPosition int // absolute, [0,100]; 0 is home goal line, 100 is away goal line
	YardsToGo     int
	Down          Down
	Possession    Possession

	HomeScore int
	AwayScore int

	HomeTimeouts int
	AwayTimeouts int

	Time *TimeState

	CoinTossResult *CoinTossResult
	Overtime       *OvertimeState

	Plays       []Play
	CurrentPlay *Play

	PendingUntimedDown bool
}

// NewGame constructs a Game ready for PreGame, with both teams' timeouts
// set to the configured per-half allotment.
func NewGame(home, away *Team, cfg *Configuration) *Game {
	return &Game{
		ID:            uuid.New(),
		Home:          home,
		Away:          away,
		Config:        cfg,
		State:         PreGame,
		FieldPosition: 25,
		YardsToGo:     10,
		Down:          DownNone,
		Possession:    PossessionNone,
		HomeTimeouts:  cfg.TimeoutsPerHalf,
		AwayTimeouts:  cfg.TimeoutsPerHalf,
		Time:          NewTimeState(cfg),
	}
}

// TeamFor resolves a Possession into the corresponding *Team, or nil for
// PossessionNone.
func (g *Game) TeamFor(p Possession) *Team {
	switch p {
	case PossessionHome:
		return g.Home
	case PossessionAway:
		return g.Away
	default:
		return nil
	}
}

// ScoreFor returns the current score for a team.
func (g *Game) ScoreFor(p Possession) int {
	switch p {
	case PossessionHome:
		return g.HomeScore
	case PossessionAway:
		return g.AwayScore
	default:
		return 0
	}
}

// AddScore adds points to a team's running score (never the OvertimeState's
// period score — spec §3 invariant 2 keeps those separate).
func (g *Game) AddScore(p Possession, points int) {
	switch p {
	case PossessionHome:
		g.HomeScore += points
	case PossessionAway:
		g.AwayScore += points
	}
}

// TimeoutsFor returns a team's remaining timeouts.
func (g *Game) TimeoutsFor(p Possession) int {
	switch p {
	case PossessionHome:
		return g.HomeTimeouts
	case PossessionAway:
		return g.AwayTimeouts
	default:
		return 0
	}
}

// UseTimeout decrements a team's remaining timeouts, floored at 0.
func (g *Game) UseTimeout(p Possession) {
	switch p {
	case PossessionHome:
		if g.HomeTimeouts > 0 {
			g.HomeTimeouts--
		}
	case PossessionAway:
		if g.AwayTimeouts > 0 {
			g.AwayTimeouts--
		}
	}
}

// ResetTimeouts restores both teams' timeouts to n (called at halftime and
// when entering overtime).
func (g *Game) ResetTimeouts(n int) {
	g.HomeTimeouts = n
	g.AwayTimeouts = n
}

// AppendPlay appends a finished play to the play history. Per spec §3
// invariant 5 this must only be called once penalty enforcement and clock
// updates are final.
func (g *Game) AppendPlay(p Play) {
	p.Index = len(g.Plays)
	g.Plays = append(g.Plays, p)
}

// DistanceToGoal returns how many yards the given offense is from the goal
// line it scores at: 100 - FieldPosition for Home, FieldPosition for Away.
func (g *Game) DistanceToGoal(forOffense Possession) int {
	if forOffense == PossessionHome {
		return 100 - g.FieldPosition
	}
	return g.FieldPosition
}

// IsInOvertime reports whether the flow state is one of the Overtime* states.
func (g *Game) IsInOvertime() bool {
	switch g.State {
	case OvertimeCoinToss, OvertimeKickoff, OvertimePrePlay, OvertimeSnap, OvertimePlay, OvertimePostPlay:
		return true
	default:
		return false
	}
}
