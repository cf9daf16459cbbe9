package model

// OvertimeState owns everything the overtime rule providers (internal/rules)
// need to decide whether the game should end, per spec §3 and §4.9.
type OvertimeState struct {
	Period              int
	CoinTossWinner      Possession
	FirstPossessionTeam Possession
	FirstPossessionDone bool
	SecondPossessionDone bool
	SuddenDeath         bool

	PeriodScores       map[Possession]int
	PossessionHistory  []Possession
	CurrentPossession  Possession
}

// NewOvertimeState starts a new overtime period with the given coin-toss
// winner and first-possession team.
func NewOvertimeState(period int, winner, firstPossession Possession) *OvertimeState {
	return &OvertimeState{
		Period:              period,
		CoinTossWinner:      winner,
		FirstPossessionTeam: firstPossession,
		PeriodScores:        map[Possession]int{PossessionHome: 0, PossessionAway: 0},
		CurrentPossession:   firstPossession,
	}
}

// SecondPossessionTeam is the opposite of FirstPossessionTeam.
func (o *OvertimeState) SecondPossessionTeam() Possession {
	return o.FirstPossessionTeam.Opponent()
}

// RecordScore adds points to a team's period score. It does not mark any
// possession complete; AdvancePossession does that.
func (o *OvertimeState) RecordScore(team Possession, points int) {
	o.PeriodScores[team] += points
}

// AdvancePossession records the team that just finished a possession and
// flips CurrentPossession to the other team.
func (o *OvertimeState) AdvancePossession(completed Possession) {
	o.PossessionHistory = append(o.PossessionHistory, completed)
	if completed == o.FirstPossessionTeam && !o.FirstPossessionDone {
		o.FirstPossessionDone = true
	} else if completed == o.SecondPossessionTeam() {
		o.SecondPossessionDone = true
	}
	o.CurrentPossession = completed.Opponent()
}
