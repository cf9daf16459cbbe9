package playexec

import (
	"testing"

	"github.com/google/uuid"

	"github.com/brahedrick/gridiron-sim/internal/decision"
	"github.com/brahedrick/gridiron-sim/internal/model"
	"github.com/brahedrick/gridiron-sim/internal/rng"
)

// leagueAveragePlayer returns a player with every attribute at 50, the
// documented default (spec §3 invariant 4).
func leagueAveragePlayer(pos model.Position, slot int) model.Player {
	return model.Player{
		ID:        uuid.New(),
		Position:  pos,
		Physical:  model.PhysicalAttributes{Speed: 50, Strength: 50, Agility: 50, Awareness: 50, Fragility: 50},
		Skill:     model.SkillAttributes{Passing: 50, Catching: 50, Rushing: 50, Blocking: 50, Tackling: 50, Coverage: 50, Kicking: 50},
		Mental:    model.MentalAttributes{Discipline: 50, Morale: 50},
		DepthSlot: slot,
	}
}

// fullRosterPositions covers every position the role selectors in
// context.go look for, two deep, so Lineup(unit) never comes back empty.
var fullRosterPositions = []model.Position{
	model.QB, model.RB, model.FB, model.WR, model.WR, model.TE,
	model.C, model.G, model.T, model.DT, model.DE, model.LB, model.OLB,
	model.CB, model.S, model.FS, model.K, model.P, model.LS,
}

func buildTeam(name string) *model.Team {
	team := &model.Team{ID: uuid.New(), Name: name, DepthChart: map[model.DepthChartUnit][]uuid.UUID{}}
	for slot := 0; slot < 2; slot++ {
		for _, pos := range fullRosterPositions {
			p := leagueAveragePlayer(pos, slot)
			team.Roster = append(team.Roster, p)
		}
	}
	var ids []uuid.UUID
	for _, p := range team.Roster {
		ids = append(ids, p.ID)
	}
	for _, unit := range model.AllDepthChartUnits {
		team.DepthChart[unit] = ids
	}
	return team
}

func newTestContext(seed int64) (Context, *model.Game) {
	home := buildTeam("Home")
	away := buildTeam("Away")
	cfg := model.DefaultConfiguration()
	game := model.NewGame(home, away, cfg)
	game.Possession = model.PossessionHome
	game.Down = model.First
	game.YardsToGo = 10
	game.FieldPosition = 25

	ctx := Context{
		Game:        game,
		Offense:     home,
		Defense:     away,
		OffenseUnit: model.DepthChartOffense,
		DefenseUnit: model.DepthChartDefense,
		Decider:     decision.NewDecider(decision.Decider{}),
	}
	return ctx, game
}

func TestExecuteRunStructuralInvariants(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		ctx, _ := newTestContext(seed)
		src := rng.NewSeededSource(seed)
		play, err := ExecuteRun(src, ctx)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		if play.Kind != model.PlayRun {
			t.Fatalf("seed %d: expected PlayRun, got %v", seed, play.Kind)
		}
		if play.Run == nil {
			t.Fatalf("seed %d: missing RunDetail", seed)
		}
		if play.Possession != model.PossessionHome {
			t.Fatalf("seed %d: expected home possession, got %v", seed, play.Possession)
		}
		if play.ElapsedSeconds <= 0 {
			t.Fatalf("seed %d: non-positive elapsed time", seed)
		}
	}
}

func TestExecutePassStructuralInvariants(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		ctx, _ := newTestContext(seed)
		src := rng.NewSeededSource(seed)
		play, err := ExecutePass(src, ctx)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		if play.Kind != model.PlayPass {
			t.Fatalf("seed %d: expected PlayPass, got %v", seed, play.Kind)
		}
		if play.Pass == nil {
			t.Fatalf("seed %d: missing PassDetail", seed)
		}
		if play.Pass.Intercepted != play.Interception {
			t.Fatalf("seed %d: Play.Interception out of sync with PassDetail.Intercepted", seed)
		}
		if play.Pass.Intercepted && play.Pass.Interception == nil {
			t.Fatalf("seed %d: intercepted pass missing InterceptionDetail", seed)
		}
	}
}

// TestExecutePassInterceptionPickSix scripts the exact draw sequence of a
// protection-held, incomplete, intercepted pass against a league-average
// roster and asserts the interceptor's return is recognized as a pick-six
// (spec §8 scenario 2: interception return that covers the remaining
// distance to the goal line scores).
func TestExecutePassInterceptionPickSix(t *testing.T) {
	ctx, game := newTestContext(0)
	// Home offense at its own 15: after a turnover, Away (now on "offense"
	// for scoring purposes) is 15 yards from the goal it attacks — within
	// the interception-return draw's [-2, 20] range, so a pick-six is
	// reachable.
	game.FieldPosition = 15

	src := rng.NewReplaySource(
		[]float64{
			0.9,  // pre_snap_penalty (FalseStart): no penalty
			0.1,  // pass_protection: held (p=0.75 for equal power lineups)
			0.5,  // pass_type_selection: irrelevant to this branch
			0.9,  // pass_completion: incomplete (p=0.60)
			0.01, // interception_on_incomplete: intercepted (p=0.04)
			0.9,  // fumble_normal (fumbled on return): not fumbled
			0.9,  // pre_snap_penalty (DefensivePassInterference): none
			0.9,  // pre_snap_penalty (PersonalFoulDefense): none
			0.5,  // elapsed time
		},
		nil,
		[]rng.IntRange{
			{Min: -2, Max: 21, Value: 15}, // interception return yards
		},
	)

	play, err := ExecutePass(src, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !play.Pass.Intercepted {
		t.Fatalf("expected an interception")
	}
	if play.Pass.Interception == nil {
		t.Fatalf("missing InterceptionDetail")
	}
	if play.Pass.Interception.ReturnYards != 15 {
		t.Fatalf("expected return yards 15, got %d", play.Pass.Interception.ReturnYards)
	}
	if !play.Pass.Interception.PickSix {
		t.Fatalf("expected PickSix for a return covering the remaining distance")
	}
	if !play.Interception {
		t.Fatalf("expected Play.Interception to mirror PassDetail.Intercepted")
	}
}

func TestExecuteKickoffStructuralInvariants(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		ctx, _ := newTestContext(seed)
		src := rng.NewSeededSource(seed)
		play, err := ExecuteKickoff(src, ctx, 0)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		if play.Kind != model.PlayKickoff {
			t.Fatalf("seed %d: expected PlayKickoff, got %v", seed, play.Kind)
		}
		if play.Kickoff == nil {
			t.Fatalf("seed %d: missing KickoffDetail", seed)
		}
		if play.EndFieldPosition < 0 || play.EndFieldPosition > 100 {
			t.Fatalf("seed %d: end field position out of range: %d", seed, play.EndFieldPosition)
		}
	}
}

func TestExecutePuntStructuralInvariants(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		ctx, game := newTestContext(seed)
		game.Down = model.Fourth
		game.YardsToGo = 8
		game.FieldPosition = 35
		src := rng.NewSeededSource(seed)
		play, err := ExecutePunt(src, ctx)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		if play.Kind != model.PlayPunt {
			t.Fatalf("seed %d: expected PlayPunt, got %v", seed, play.Kind)
		}
		if play.Punt == nil {
			t.Fatalf("seed %d: missing PuntDetail", seed)
		}
		if play.EndFieldPosition < 0 || play.EndFieldPosition > 100 {
			t.Fatalf("seed %d: end field position out of range: %d", seed, play.EndFieldPosition)
		}
	}
}

func TestExecuteFieldGoalStructuralInvariants(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		ctx, game := newTestContext(seed)
		game.Down = model.Fourth
		game.YardsToGo = 2
		game.FieldPosition = 82 // 18 yards from the away goal: a ~35 yard attempt
		src := rng.NewSeededSource(seed)
		play, err := ExecuteFieldGoal(src, ctx)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		if play.Kind != model.PlayFieldGoal {
			t.Fatalf("seed %d: expected PlayFieldGoal, got %v", seed, play.Kind)
		}
		if play.FieldGoal == nil {
			t.Fatalf("seed %d: missing FieldGoalDetail", seed)
		}
		if play.FieldGoal.Made && play.FieldGoal.Blocked {
			t.Fatalf("seed %d: a field goal cannot be both made and blocked", seed)
		}
	}
}

func TestExecuteRunContractViolationWithoutOffense(t *testing.T) {
	ctx, _ := newTestContext(0)
	ctx.Offense = &model.Team{ID: uuid.New(), DepthChart: map[model.DepthChartUnit][]uuid.UUID{}}
	src := rng.NewSeededSource(1)
	// No contract is enforced for Run (any position can carry via
	// ballCarrier's quarterback fallback), so this should not error even
	// with an empty offense lineup — ballCarrier simply returns !ok and
	// the play proceeds with a zero-value carrier.
	if _, err := ExecuteRun(src, ctx); err != nil {
		t.Fatalf("unexpected error with empty offense: %v", err)
	}
}

func TestExecuteFieldGoalContractViolationWithoutKicker(t *testing.T) {
	ctx, _ := newTestContext(0)
	ctx.Offense = &model.Team{ID: uuid.New(), DepthChart: map[model.DepthChartUnit][]uuid.UUID{}}
	src := rng.NewSeededSource(1)
	if _, err := ExecuteFieldGoal(src, ctx); err == nil {
		t.Fatalf("expected contract violation without a kicker")
	}
}

// TestExecuteRunScriptedMinimalRun scripts spec §8 scenario 1 on 1st-and-10
// from the offense's own 25 with a league-average roster: no scramble, a
// middle run, blocking holds, no penalty, a ~5 yard gain, no broken tackle,
// no breakaway, no fumble, no injuries, and the ball stays in bounds.
//
// This is NOT a byte-for-byte copy of spec.md's legacy 15-value literal
// list: that list predates the run executor's per-tackler
// injury-check-skip gate (see ExecuteRun's doc comment) and doesn't
// enumerate the trailing out-of-bounds/elapsed-time draws, since neither
// affects the yardage/penalty/fumble/injury outcome the scenario describes.
// The values below are computed against the executor's actual, current
// 18-float/1-int draw sequence so the scripted test reproduces the
// documented behavior rather than a stale draw count.
func TestExecuteRunScriptedMinimalRun(t *testing.T) {
	ctx, game := newTestContext(0)

	src := rng.NewReplaySource(
		[]float64{
			0.15,     // qb_scramble_gate: no scramble (p=0.10)
			0.4,      // run_blocking_success: blocking holds (p=0.65)
			0.99,     // pre_snap_penalty (OffensiveHolding): no penalty
			0.613672, // Box-Muller u1 for run yards, engineered to land exactly on 5
			0.0,      // Box-Muller u2 (cos(0)=1 avoids floating-point drift in the angle term)
			0.9,      // tackle_break: not broken (p=0.25 for equal skill)
			0.9,      // big_run: no breakaway (p=0.15 for speed=50)
			0.99,     // pre_snap_penalty (FacemaskDefense): no penalty
			0.5,      // carrier injury_check_skip_gate: always proceeds
			0.9,      // carrier injury_check: no injury (p=0.012)
			0.5,      // tackler 1 injury_check_skip_gate: always proceeds
			0.9,      // tackler 1 injury_check: no injury
			0.5,      // tackler 2 injury_check_skip_gate: always proceeds
			0.9,      // tackler 2 injury_check: no injury
			0.9,      // fumble_normal: no fumble (p~0.0056 for equal power)
			0.9,      // run_out_of_bounds: stays in bounds (p=0.15)
			0.5,      // elapsed time U(4,7)
			0.5,      // runoff time U(20,40), since the clock keeps running
		},
		nil,
		[]rng.IntRange{
			{Min: 0, Max: 5, Value: 2}, // run_direction: "middle"
		},
	)

	play, err := ExecuteRun(src, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if play.Run.Scrambled {
		t.Errorf("expected a designed hand-off, not a scramble")
	}
	if play.Run.Direction != "middle" {
		t.Errorf("expected direction \"middle\", got %q", play.Run.Direction)
	}
	if play.YardsGained != 5 {
		t.Errorf("expected a 5 yard gain, got %d", play.YardsGained)
	}
	if len(play.Penalties) != 0 {
		t.Errorf("expected no penalties, got %+v", play.Penalties)
	}
	if len(play.Fumbles) != 0 {
		t.Errorf("expected no fumble, got %+v", play.Fumbles)
	}
	if len(play.Injuries) != 0 {
		t.Errorf("expected no injuries, got %+v", play.Injuries)
	}
	if play.Run.BrokeTackle || play.Run.Breakaway {
		t.Errorf("expected neither a broken tackle nor a breakaway")
	}
	if play.Run.OutOfBounds {
		t.Errorf("expected the carrier to stay in bounds")
	}

	// The down/distance/field-position transition itself is internal/flow's
	// responsibility (ExecuteRun only produces the Play); the scenario's
	// "2nd-and-5 from own 30" outcome follows directly from this play's
	// fields: FieldPosition 25 + 5 yards gained = own 30, YardsToGo 10-5 = 5,
	// next down = Second.
	nextFieldPosition := game.FieldPosition + play.YardsGained
	nextYardsToGo := game.YardsToGo - play.YardsGained
	if nextFieldPosition != 30 || nextYardsToGo != 5 {
		t.Errorf("expected the play to leave 2nd-and-5 from own 30, got %d-and-%d from own %d",
			game.Down+1, nextYardsToGo, nextFieldPosition)
	}
}
