package stats

import (
	"testing"

	"github.com/google/uuid"

	"github.com/brahedrick/gridiron-sim/internal/model"
)

func testGame() (*model.Game, model.Player, model.Player) {
	carrier := model.Player{ID: uuid.New(), Position: model.RB}
	tackler := model.Player{ID: uuid.New(), Position: model.LB}
	home := &model.Team{ID: uuid.New(), Roster: []model.Player{carrier}}
	away := &model.Team{ID: uuid.New(), Roster: []model.Player{tackler}}
	game := model.NewGame(home, away, model.DefaultConfiguration())
	return game, carrier, tackler
}

func TestAccumulateRunCreditsCarrierAndTackler(t *testing.T) {
	game, carrier, tackler := testGame()
	play := model.Play{
		Kind:        model.PlayRun,
		YardsGained: 7,
		Touchdown:   true,
		Run:         &model.RunDetail{Carrier: carrier.ID, Tackler: tackler.ID},
	}
	Accumulate(game, play)

	c, _ := game.Home.PlayerByID(carrier.ID)
	if c.Counters.RushAttempts != 1 || c.Counters.RushYards != 7 || c.Counters.RushTDs != 1 {
		t.Fatalf("unexpected carrier counters: %+v", c.Counters)
	}
	tk, _ := game.Away.PlayerByID(tackler.ID)
	if tk.Counters.Tackles != 1 {
		t.Fatalf("unexpected tackler counters: %+v", tk.Counters)
	}
}

func TestAccumulatePassInterceptionCreditsBothSides(t *testing.T) {
	game, passer, interceptor := testGame()
	play := model.Play{
		Kind:         model.PlayPass,
		Interception: true,
		Pass: &model.PassDetail{
			Passer:      passer.ID,
			Intercepted: true,
			Interception: &model.InterceptionDetail{
				Interceptor: interceptor.ID,
				ReturnYards: 40,
				PickSix:     true,
			},
		},
	}
	Accumulate(game, play)

	p, _ := game.Home.PlayerByID(passer.ID)
	if p.Counters.Interceptions != 1 {
		t.Fatalf("expected passer interceptions thrown = 1, got %+v", p.Counters)
	}
	it, _ := game.Away.PlayerByID(interceptor.ID)
	if it.Counters.Interceptions != 1 {
		t.Fatalf("expected interceptor interceptions = 1, got %+v", it.Counters)
	}
}

func TestAccumulateFieldGoalTracksAttemptsAndMakes(t *testing.T) {
	game, kicker, _ := testGame()
	Accumulate(game, model.Play{Kind: model.PlayFieldGoal, FieldGoal: &model.FieldGoalDetail{Kicker: kicker.ID, Made: true}})
	Accumulate(game, model.Play{Kind: model.PlayFieldGoal, FieldGoal: &model.FieldGoalDetail{Kicker: kicker.ID, Made: false}})

	k, _ := game.Home.PlayerByID(kicker.ID)
	if k.Counters.FieldGoalsAttempted != 2 || k.Counters.FieldGoalsMade != 1 {
		t.Fatalf("unexpected kicker counters: %+v", k.Counters)
	}
}
